package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestPrintModes(t *testing.T) {
	modes := []registry.GameInfo{
		{ID: "blockfall", Title: "Blockfall"},
		{ID: "blockfall_classic", Title: "Blockfall Classic"},
	}
	records := map[string]*storage.GameStats{
		"blockfall": {GameID: "blockfall", GamesCount: 4, HighScore: 1200},
	}

	var buf bytes.Buffer
	if err := printModes(&buf, modes, records); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")

	if fields := strings.Fields(lines[0]); strings.Join(fields, " ") != "MODE TITLE GAMES BEST" {
		t.Errorf("header = %q", lines[0])
	}
	if fields := strings.Fields(lines[1]); len(fields) != 4 || fields[2] != "4" || fields[3] != "1200" {
		t.Errorf("played mode row = %q", lines[1])
	}
	if fields := strings.Fields(lines[2]); len(fields) != 5 || fields[3] != "0" || fields[4] != "-" {
		t.Errorf("unplayed mode row = %q", lines[2])
	}
	// Columns are aligned by the tabwriter.
	if strings.Index(lines[1], "4") != strings.Index(lines[2], "0") {
		t.Errorf("GAMES column misaligned:\n%s\n%s", lines[1], lines[2])
	}
}

func TestPrintModesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := printModes(&buf, nil, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "No modes available." {
		t.Errorf("output = %q", got)
	}
}
