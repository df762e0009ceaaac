package session

import (
	"encoding/json"
	"testing"

	"cachequest/internal/domain/cache"
	"cachequest/internal/domain/geo"
)

func TestSnapshot_WireFormat(t *testing.T) {
	snap := Snapshot{
		PlayerTokens:    []cache.Token{{Key: "i:0j:0$0"}},
		PlayerPosition:  geo.Point{Lat: 36.5, Lng: -122.25},
		MovementHistory: []geo.Point{{Lat: 36.5, Lng: -122.25}},
		ArchivedCaches: []ArchiveEntry{
			{"0,0", `{"location":{"i":0,"j":0},"tokens":[]}`},
		},
	}

	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	want := `{"playerTokens":[{"key":"i:0j:0$0"}],` +
		`"playerPosition":{"lat":36.5,"lng":-122.25},` +
		`"movementHistory":[{"lat":36.5,"lng":-122.25}],` +
		`"archivedCaches":[["0,0","{\"location\":{\"i\":0,\"j\":0},\"tokens\":[]}"]]}`
	if string(b) != want {
		t.Fatalf("snapshot wire format:\n got=%s\nwant=%s", b, want)
	}

	var back Snapshot
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if back.ArchivedCaches[0].Key() != "0,0" {
		t.Fatalf("round-tripped archive key = %q", back.ArchivedCaches[0].Key())
	}
	if back.PlayerPosition != snap.PlayerPosition {
		t.Fatalf("round-tripped position = %v", back.PlayerPosition)
	}
}

func TestArchiveEntries_SortedAndInvertible(t *testing.T) {
	archive := map[string]string{
		"1,0":  "b",
		"-1,2": "a",
		"0,0":  "c",
	}
	entries := ArchiveEntries(archive)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	for idx := 1; idx < len(entries); idx++ {
		if entries[idx-1].Key() >= entries[idx].Key() {
			t.Fatalf("entries not sorted: %q before %q", entries[idx-1].Key(), entries[idx].Key())
		}
	}

	back := ArchiveMap(entries)
	if len(back) != len(archive) {
		t.Fatalf("inverted map has %d entries, want %d", len(back), len(archive))
	}
	for key, memento := range archive {
		if back[key] != memento {
			t.Fatalf("entry %s mangled: %q vs %q", key, back[key], memento)
		}
	}
}
