// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// Format is a persistence format.
type Format int

const (
	Binary Format = iota
	YAML
)

// FormatOf picks the format from the extension of path: .yaml and .yml are
// YAML, .fls and .bytes are the binary envelope.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".fls", ".bytes":
		return Binary, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrFormat, path)
}

// ReadFile loads a system from path.
func ReadFile(path string, opts ...fuzzy.Option) (*fuzzy.System, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: read %s: %w", path, err)
	}

	var sys *fuzzy.System
	if f == YAML {
		sys, err = DecodeYAML(data, opts...)
	} else {
		sys, err = Decode(data, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	return sys, nil
}

// WriteFile stores sys at path, creating parent directories.
func WriteFile(path string, sys *fuzzy.System) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	if f == YAML {
		data, err = EncodeYAML(sys)
	} else {
		data, err = Encode(sys)
	}
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("codec: create directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}

	return nil
}
