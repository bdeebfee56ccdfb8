// Package logging wires apex/log handlers for the server: console output for
// everything at the configured level plus an error-only log file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/level"
	"github.com/apex/log/handlers/multi"
	"github.com/apex/log/handlers/text"
)

// FileName is the error log written inside the log directory.
const FileName = "game-of-life.log"

// Options selects log destinations.
type Options struct {
	Debug  bool
	Dir    string
	Stderr io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewHandler builds the combined handler. The returned closer releases the
// log file, if one was opened.
func NewHandler(opts Options) (log.Handler, io.Closer, error) {
	out := opts.Stderr
	if out == nil {
		out = os.Stderr
	}
	console := cli.New(out)
	if opts.Dir == "" {
		return console, nopCloser{}, nil
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(opts.Dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return multi.New(console, level.New(text.New(f), log.ErrorLevel)), f, nil
}

// Setup installs the handler on the package-level apex logger.
func Setup(opts Options) (io.Closer, error) {
	h, closer, err := NewHandler(opts)
	if err != nil {
		return nil, err
	}
	log.SetHandler(h)
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return closer, nil
}
