// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
)

// Header prefixes every binary envelope.
var Header = [8]byte{0xAB, 0xCD, 0xEF, 0x12, 0x34, 0x56, 0x78, 0x90}

var (
	// ErrBadHeader indicates data that does not start with Header.
	ErrBadHeader = errors.New("codec: bad header")

	// ErrPayload indicates a body that could not be decoded into a system.
	ErrPayload = errors.New("codec: bad payload")

	// ErrFormat indicates a file extension with no known format.
	ErrFormat = errors.New("codec: unknown format")
)

// ValidateHeader reports whether b starts with Header.
func ValidateHeader(b []byte) bool {
	return len(b) >= len(Header) && bytes.Equal(b[:len(Header)], Header[:])
}

// Encode returns Header followed by the JSON snapshot of sys.
func Encode(sys *fuzzy.System) ([]byte, error) {
	snap, err := sys.Snapshot()
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("codec: encode %q: %w", snap.ID, err)
	}

	out := make([]byte, 0, len(Header)+len(body))
	out = append(out, Header[:]...)

	return append(out, body...), nil
}

// Decode rebuilds a system from a binary envelope. The header is checked
// before anything is parsed, and the body must hold exactly one JSON object.
// Options are passed to fuzzy.FromSnapshot.
func Decode(b []byte, opts ...fuzzy.Option) (*fuzzy.System, error) {
	if !ValidateHeader(b) {
		return nil, ErrBadHeader
	}

	var snap fuzzy.Snapshot
	dec := json.NewDecoder(bytes.NewReader(b[len(Header):]))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after the snapshot", ErrPayload)
	}

	return build(snap, opts)
}

// EncodeYAML renders the snapshot of sys as a YAML definition.
func EncodeYAML(sys *fuzzy.System) ([]byte, error) {
	snap, err := sys.Snapshot()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("codec: encode %q: %w", snap.ID, err)
	}
	if err = enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DecodeYAML rebuilds a system from a single YAML document. Unknown keys
// are rejected.
func DecodeYAML(b []byte, opts ...fuzzy.Option) (*fuzzy.System, error) {
	var snap fuzzy.Snapshot
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayload, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: more than one document", ErrPayload)
	}

	return build(snap, opts)
}

func build(snap fuzzy.Snapshot, opts []fuzzy.Option) (*fuzzy.System, error) {
	sys, err := fuzzy.FromSnapshot(snap, opts...)
	if err != nil {
		if errors.Is(err, fuzzy.ErrAlreadyRegistered) {
			return nil, err
		}

		return nil, fmt.Errorf("%w: %w", ErrPayload, err)
	}

	return sys, nil
}
