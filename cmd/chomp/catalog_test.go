package main

import (
	"testing"

	"github.com/vovakirdan/chomp/internal/games/chomp"
	"github.com/vovakirdan/chomp/internal/games/chomp/levels"
)

func TestMenuItems(t *testing.T) {
	catalog, err := levels.Load("", 16)
	if err != nil {
		t.Fatalf("levels.Load() error = %v", err)
	}

	items := menuItems(catalog)
	if len(items) != 3 {
		t.Fatalf("menuItems() returned %d items, expected 3", len(items))
	}

	// Regular levels first in ID order, the debug mode last.
	expected := []struct{ game, level string }{
		{chomp.GameID, "arena"},
		{chomp.GameID, "classic"},
		{chomp.DebugGameID, levels.DiagonalID},
	}
	for i, e := range expected {
		if items[i].GameID != e.game || items[i].LevelID != e.level {
			t.Errorf("item %d = %s/%s, expected %s/%s", i, items[i].GameID, items[i].LevelID, e.game, e.level)
		}
	}
	if items[1].Detail != "28x31 builtin" {
		t.Errorf("classic detail = %q, expected \"28x31 builtin\"", items[1].Detail)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/player")

	tests := []struct {
		in, expected string
	}{
		{"~/.chomp/chomp.log", "/home/player/.chomp/chomp.log"},
		{"/var/log/chomp.log", "/var/log/chomp.log"},
		{"", ""},
	}

	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil {
			t.Fatalf("expandHome(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
