// Package client talks to the life server JSON API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"life-web/internal/sim"
	"life-web/pkg/life"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, strings.TrimSpace(e.Body))
}

// Unwrap maps a 409 onto life.ErrNotInitialized. A 400 may come from any form
// field, so it is left unmapped.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusConflict {
		return life.ErrNotInitialized
	}
	return nil
}

// Client calls a single server.
type Client struct {
	base string
	hc   *http.Client
}

// New returns a Client for baseURL. A nil hc uses a client that does not
// follow redirects.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

// Snapshot fetches the current world.
func (c *Client) Snapshot(ctx context.Context) (sim.Snapshot, error) {
	return c.snapshot(ctx, http.MethodGet)
}

// Advance moves the world forward one generation.
func (c *Client) Advance(ctx context.Context) (sim.Snapshot, error) {
	return c.snapshot(ctx, http.MethodPost)
}

func (c *Client) snapshot(ctx context.Context, method string) (sim.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+"/api/life", nil)
	if err != nil {
		return sim.Snapshot{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return sim.Snapshot{}, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return sim.Snapshot{}, err
	}
	var snap sim.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return sim.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// NewWorld submits the world form. A zero velocity leaves the server default.
func (c *Client) NewWorld(ctx context.Context, width, height int, velocity float64) error {
	form := url.Values{
		"width":  {strconv.Itoa(width)},
		"height": {strconv.Itoa(height)},
	}
	if velocity > 0 {
		form.Set("velocity", strconv.FormatFloat(velocity, 'g', -1, 64))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusSeeOther {
		return nil
	}
	if err := checkStatus(resp); err != nil {
		return err
	}
	return errors.New("new world: unexpected response " + resp.Status)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &StatusError{Code: resp.StatusCode, Body: string(body)}
}
