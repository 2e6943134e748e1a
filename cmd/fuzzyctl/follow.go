// SPDX-License-Identifier: MIT

package main

import _ "embed"

// followDefinition is the distance → speed system used by "follow" when no
// --def is given.
//
//go:embed follow.yaml
var followDefinition []byte
