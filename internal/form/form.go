// Package form parses and validates the "create world" form.
package form

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"life-web/internal/sim"
	"life-web/pkg/life"
)

// Field names used by the HTML form.
const (
	FieldWidth    = "width"
	FieldHeight   = "height"
	FieldVelocity = "velocity"
)

// World is the validated form input.
type World struct {
	Width    int
	Height   int
	Velocity float64
}

// Errors maps field names to user-facing messages.
type Errors map[string]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// Unwrap exposes the sentinel errors matching the failed fields.
func (e Errors) Unwrap() []error {
	var errs []error
	if _, ok := e[FieldWidth]; ok {
		errs = append(errs, life.ErrInvalidDimensions)
	} else if _, ok := e[FieldHeight]; ok {
		errs = append(errs, life.ErrInvalidDimensions)
	}
	if _, ok := e[FieldVelocity]; ok {
		errs = append(errs, sim.ErrInvalidVelocity)
	}
	return errs
}

// Labels returns the field captions shown next to each input.
func Labels(lim sim.Limits) map[string]string {
	return map[string]string{
		FieldWidth:    fmt.Sprintf("World width (from %d to %d)", lim.MinSize, lim.MaxSize),
		FieldHeight:   fmt.Sprintf("World height (from %d to %d)", lim.MinSize, lim.MaxSize),
		FieldVelocity: fmt.Sprintf("Generation velocity in seconds (from %g to %g)", lim.MinVelocity, lim.MaxVelocity),
	}
}

// Parse validates v against lim. Width and height are required; an empty
// velocity selects defVelocity.
func Parse(v url.Values, lim sim.Limits, defVelocity float64) (World, error) {
	errs := Errors{}
	w := World{Velocity: defVelocity}

	w.Width = parseSize(v, FieldWidth, lim, errs)
	w.Height = parseSize(v, FieldHeight, lim, errs)

	if raw := strings.TrimSpace(v.Get(FieldVelocity)); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil:
			errs[FieldVelocity] = "must be a number"
		case !lim.AcceptsVelocity(parsed):
			errs[FieldVelocity] = fmt.Sprintf("must be between %g and %g", lim.MinVelocity, lim.MaxVelocity)
		default:
			w.Velocity = parsed
		}
	}

	if len(errs) > 0 {
		return World{}, errs
	}
	return w, nil
}

func parseSize(v url.Values, field string, lim sim.Limits, errs Errors) int {
	raw := strings.TrimSpace(v.Get(field))
	if raw == "" {
		errs[field] = "this field is required"
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = "must be a whole number"
		return 0
	}
	if n < lim.MinSize || n > lim.MaxSize {
		errs[field] = fmt.Sprintf("must be between %d and %d", lim.MinSize, lim.MaxSize)
		return 0
	}
	return n
}
