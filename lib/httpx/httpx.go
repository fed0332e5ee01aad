// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

// Package httpx provides HTTP I/O helpers for Praxis.
//
// Response body reads are bounded at MaxResponseSize to prevent unbounded
// memory allocation from a misbehaving server. The helper is meant for
// API responses, not for streaming downloads, which should be read
// incrementally with io.Copy.
package httpx

import "io"

// MaxResponseSize is the bound on API response body reads: 64 MB. It
// exists solely so a pathological response cannot exhaust memory;
// legitimate assessment payloads are orders of magnitude smaller.
const MaxResponseSize int64 = 64 << 20

// ReadResponse reads an API response body up to MaxResponseSize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}
