// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package config

import "github.com/samber/oops"

// rawProvider adapts an in-memory byte slice to koanf.Provider, for
// bundle bytes fetched from a remote source (S3) rather than read
// from a local file.
type rawProvider struct {
	data []byte
}

// ReadBytes returns the raw bundle bytes for the parser to unmarshal.
func (p rawProvider) ReadBytes() ([]byte, error) {
	return p.data, nil
}

// Read is not supported: rawProvider is always paired with a parser
// that consumes ReadBytes.
func (p rawProvider) Read() (map[string]any, error) {
	return nil, oops.In("config").New("rawProvider requires a parser; Read() is unsupported")
}
