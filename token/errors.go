/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "errors"

// Sentinel errors for token tree operations.
var (
	// ErrMalformedRoot indicates the document root is not an object.
	ErrMalformedRoot = errors.New("token document root must be an object")

	// ErrCircularReference indicates a circular token reference was detected.
	ErrCircularReference = errors.New("circular token reference")

	// ErrUnresolvedReference indicates a reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrInvalidConfig indicates the supplied configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownTransform indicates a transform name with no registered transform.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnknownFilter indicates a filter name with no registered filter.
	ErrUnknownFilter = errors.New("unknown filter")

	// ErrMissingSource indicates no token source file could be found.
	ErrMissingSource = errors.New("missing token source")
)
