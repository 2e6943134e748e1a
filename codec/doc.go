// SPDX-License-Identifier: MIT

// Package codec persists fuzzy systems.
//
// Two formats:
//
//   - Binary envelope (.fls): the 8-byte magic Header followed by a JSON
//     payload of fuzzy.Snapshot. Decode checks the header before parsing.
//   - YAML definition (.yaml, .yml): the same Snapshot, meant to be written
//     by hand. Empty ids are generated on load.
//
// ReadFile and WriteFile choose the format by file extension.
//
// Errors:
//
//   - ErrBadHeader  input too short or not starting with Header.
//   - ErrPayload    the body could not be parsed or rebuilt.
//   - ErrFormat     unknown file extension.
package codec
