package writers

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrUnknownFormat indicates a format name with no registered writer.
var ErrUnknownFormat = errors.New("writers: unknown format")

// WriteFunc serializes one run to w.
type WriteFunc func(w io.Writer, run Run) error

// registry maps format name → writer. Filled by Register in init blocks.
var registry = map[string]WriteFunc{}

// Register installs fn under format, replacing any previous writer.
func Register(format string, fn WriteFunc) { registry[strings.ToLower(format)] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Lookup returns the writer registered under format.
func Lookup(format string) (WriteFunc, error) {
	fn, ok := registry[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}

	return fn, nil
}

// Write dispatches run to the writer registered under format.
func Write(format string, w io.Writer, run Run) error {
	fn, err := Lookup(format)
	if err != nil {
		return err
	}

	return fn(w, run)
}
