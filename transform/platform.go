/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import "bennypowers.dev/tsinor/token"

// platformTransforms maps target platform names to their transform
// lists, applied in order.
var platformTransforms = map[string][]string{
	"web":     {"color/hex", "size/rem", "name/kebab"},
	"react":   {"color/hex", "size/rem", "name/camel"},
	"ios":     {"color/hex", "name/camel"},
	"android": {"color/hex", "name/snake"},
	"flutter": {"color/hex", "name/camel"},
}

// Platforms returns the known platform names.
func Platforms() []string {
	names := make([]string, 0, len(platformTransforms))
	for name := range platformTransforms {
		names = append(names, name)
	}
	return names
}

// PlatformTransforms returns the transform list for a platform, or nil
// for an unknown platform.
func PlatformTransforms(platform string) []string {
	return platformTransforms[platform]
}

// PlatformTokens applies the platform's transform list to a copy of
// the tree. An unknown platform applies no transforms: the result is
// an identical copy.
func PlatformTokens(tree *token.Group, platform string) *token.Group {
	names, ok := platformTransforms[platform]
	if !ok {
		return tree.Clone()
	}
	// Platform transform lists only name built-ins, so Apply cannot
	// fail on an unknown name here.
	result, err := Apply(tree, names)
	if err != nil {
		return tree.Clone()
	}
	return result
}
