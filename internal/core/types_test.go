package core

import (
	"slices"
	"testing"

	"gol/pkg/life"
)

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Patterns())
	Register("", func(map[string]string) *life.Grid { return nil })
	Register("nil-factory", nil)
	if len(Patterns()) != before {
		t.Fatal("invalid registrations were stored")
	}
}

func TestPatternNamesSorted(t *testing.T) {
	Register("zz-test", func(map[string]string) *life.Grid { return life.NewGrid(1, 1) })
	Register("aa-test", func(map[string]string) *life.Grid { return life.NewGrid(1, 1) })
	names := PatternNames()
	if !slices.IsSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
	if !slices.Contains(names, "aa-test") || !slices.Contains(names, "zz-test") {
		t.Fatalf("registered names missing: %v", names)
	}
}
