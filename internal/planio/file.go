package planio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// WriteFile writes an export to path atomically, so an interrupted save
// never leaves a truncated plan on disk.
func WriteFile(path string, e Export) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing plan file: %w", err)
	}
	return nil
}

// ReadFile reads and decodes an export from path. The caller is expected
// to Validate the result before importing it.
func ReadFile(path string) (Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("reading plan file: %w", err)
	}
	return Decode(data)
}
