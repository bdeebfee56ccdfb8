package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apex/log"
)

func TestErrorsReachLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	h, closer, err := NewHandler(Options{Dir: dir, Stderr: &console})
	if err != nil {
		t.Fatal(err)
	}
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}
	logger.Info("world generated")
	logger.WithField("path", "/api/life").Error("boom")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	file := string(data)
	if !strings.Contains(file, "boom") {
		t.Fatalf("error missing from log file: %q", file)
	}
	if strings.Contains(file, "world generated") {
		t.Fatalf("info message leaked into error log: %q", file)
	}
	if !strings.Contains(console.String(), "world generated") || !strings.Contains(console.String(), "boom") {
		t.Fatalf("console missing messages: %q", console.String())
	}
}

func TestNoDirDisablesFile(t *testing.T) {
	var console bytes.Buffer
	h, closer, err := NewHandler(Options{Stderr: &console})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	logger := &log.Logger{Handler: h, Level: log.InfoLevel}
	logger.Info("hello")
	if !strings.Contains(console.String(), "hello") {
		t.Fatalf("console output = %q", console.String())
	}
}
