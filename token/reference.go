/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

// referencePattern matches whole-string curly brace references:
// {token.reference.path}. A reference embedded inside a larger string
// is not a reference and is never resolved.
var referencePattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// IsReference reports whether the value is a token reference string.
func IsReference(value any) bool {
	s, ok := value.(string)
	return ok && referencePattern.MatchString(s)
}

// ReferencePath extracts the dot-separated token path from a reference
// value. Returns the path and true if the value is a reference, empty
// string and false otherwise.
func ReferencePath(value any) (string, bool) {
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	matches := referencePattern.FindStringSubmatch(s)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// SplitPath splits a dot-separated token path into segments. Numeric
// segments like "500" are valid keys; array indexing is not supported.
func SplitPath(path string) []string {
	return strings.Split(path, ".")
}
