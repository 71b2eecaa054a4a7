/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader_test

import (
	"errors"
	"sync"
	"testing"

	"bennypowers.dev/tsinor/internal/mapfs"
	"bennypowers.dev/tsinor/loader"
	"bennypowers.dev/tsinor/testutil"
	"bennypowers.dev/tsinor/token"
)

func leafValue(t *testing.T, tree *token.Group, path string) any {
	t.Helper()
	node, ok := tree.LookupPath(path)
	if !ok {
		t.Fatalf("path %s not found", path)
	}
	leaf, ok := node.(*token.Leaf)
	if !ok {
		t.Fatalf("path %s is not a leaf", path)
	}
	return leaf.Value
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{
		"colors": {
			"primary": {
				"500": { "$value": "#3b82f6", "$type": "color" }
			}
		}
	}`, 0644)

	tree, err := loader.New(mfs).Load("/project/tokens.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := leafValue(t, tree, "colors.primary.500"); got != "#3b82f6" {
		t.Errorf("expected #3b82f6, got %v", got)
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{
		// brand palette
		"colors": {
			"primary": {
				"500": "#3b82f6", // base shade
			},
		},
	}`, 0644)

	tree, err := loader.New(mfs).Load("/project/tokens.json")
	if err != nil {
		t.Fatalf("comments and trailing commas should parse: %v", err)
	}
	if got := leafValue(t, tree, "colors.primary.500"); got != "#3b82f6" {
		t.Errorf("expected #3b82f6, got %v", got)
	}
}

func TestLoad_YAMLNumericKeys(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.yaml", `
colors:
  primary:
    500: "#3b82f6"
    900: "#1e3a8a"
spacing:
  sm: 4px
`, 0644)

	tree, err := loader.New(mfs).Load("/project/tokens.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// YAML integer keys must come out as string keys.
	if got := leafValue(t, tree, "colors.primary.500"); got != "#3b82f6" {
		t.Errorf("expected #3b82f6, got %v", got)
	}
	if got := leafValue(t, tree, "spacing.sm"); got != "4px" {
		t.Errorf("expected 4px, got %v", got)
	}
}

func TestLoad_TokenStudioMarkers(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{
		"color": {
			"primary": { "value": "#fff", "type": "color" }
		}
	}`, 0644)

	tree, err := loader.New(mfs).Load("/project/tokens.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := leafValue(t, tree, "color.primary"); got != "#fff" {
		t.Errorf("expected #fff, got %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.New(mapfs.New()).Load("/project/tokens.json")
	if !errors.Is(err, token.ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{"colors": `, 0644)

	if _, err := loader.New(mfs).Load("/project/tokens.json"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_NonMapRoot(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.yaml", `- one
- two
`, 0644)

	_, err := loader.New(mfs).Load("/project/tokens.yaml")
	if !errors.Is(err, token.ErrMalformedRoot) {
		t.Fatalf("expected ErrMalformedRoot, got %v", err)
	}
}

func TestLoad_Concurrent(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/tokens.json", `{
		"colors": { "primary": { "500": "#3b82f6" } }
	}`, 0644)
	l := loader.New(mfs)

	var wg sync.WaitGroup
	results := make([]*token.Group, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = l.Load("/project/tokens.json")
		}(i)
	}
	wg.Wait()

	for i := range results {
		if errs[i] != nil {
			t.Fatalf("load %d failed: %v", i, errs[i])
		}
		if got := leafValue(t, results[i], "colors.primary.500"); got != "#3b82f6" {
			t.Errorf("load %d: expected #3b82f6, got %v", i, got)
		}
	}
}

func TestLoad_Fixture(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "tokens", "/project")

	tree, err := loader.New(mfs).Load("/project/tokens.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := leafValue(t, tree, "semantic.colors.action"); got != "{core.colors.primary.500}" {
		t.Errorf("unexpected value: %v", got)
	}
	if got := tree.CountLeaves(); got != 8 {
		t.Errorf("expected 8 leaves, got %d", got)
	}

	// The same bytes parse identically outside the filesystem boundary.
	data := testutil.LoadFixtureFile(t, "tokens/tokens.json")
	direct, err := loader.Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := direct.CountLeaves(); got != tree.CountLeaves() {
		t.Errorf("expected identical leaf counts, got %d and %d", got, tree.CountLeaves())
	}
}

func TestParse_FormatDetection(t *testing.T) {
	jsonTree, err := loader.Parse([]byte(`{"colors": {"primary": {"500": "#fff"}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yamlTree, err := loader.Parse([]byte("colors:\n  primary:\n    500: \"#fff\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if leafValue(t, jsonTree, "colors.primary.500") != leafValue(t, yamlTree, "colors.primary.500") {
		t.Error("JSON and YAML inputs must parse to the same tree")
	}
}
