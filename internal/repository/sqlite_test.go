package repository

import (
	"context"
	"path/filepath"
	"testing"

	"playlist_manager/internal/models"
)

// End-to-end over a real SQLite file: order assignment, ownership masking
// and the delete cascade depend on the schema and pragmas applied by
// InitDB, which sqlmock cannot see.
func TestSQLite_EndToEnd(t *testing.T) {
	sqlDB, err := InitDB(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	defer sqlDB.Close()

	repos := NewRepository(sqlDB)
	ctx := context.Background()

	aliceID, err := repos.Auth.Create("alice", "hash-a")
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bobID, err := repos.Auth.Create("bob", "hash-b")
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	pl, err := repos.Playlists.Create(ctx, aliceID, "road trip")
	if err != nil {
		t.Fatalf("create playlist: %v", err)
	}

	// Order indexes must come back 0, 1, 2 starting from an empty playlist.
	for i, title := range []string{"X", "Y", "Z"} {
		s, err := repos.Songs.Add(ctx, pl.ID, models.Song{Title: title, Artist: "A", Path: "/" + title})
		if err != nil {
			t.Fatalf("add song %q: %v", title, err)
		}
		if s.Order != i {
			t.Fatalf("song %q: orden=%d, want %d", title, s.Order, i)
		}
	}

	songs, err := repos.Songs.ListByPlaylist(ctx, pl.ID)
	if err != nil {
		t.Fatalf("list songs: %v", err)
	}
	if len(songs) != 3 {
		t.Fatalf("expected 3 songs, got %d", len(songs))
	}
	for i, s := range songs {
		if s.Order != i {
			t.Fatalf("songs[%d]: orden=%d, want %d", i, s.Order, i)
		}
	}

	// Another user sees the playlist as missing.
	foreign, err := repos.Playlists.GetOwned(ctx, bobID, pl.ID)
	if err != nil {
		t.Fatalf("foreign GetOwned: %v", err)
	}
	if foreign != nil {
		t.Fatalf("foreign playlist leaked: %+v", foreign)
	}

	// A foreign user cannot delete songs out of it either.
	if err := repos.Songs.Remove(ctx, bobID, pl.ID, songs[0].ID); err != nil {
		t.Fatalf("foreign Remove: %v", err)
	}
	if left, _ := repos.Songs.ListByPlaylist(ctx, pl.ID); len(left) != 3 {
		t.Fatalf("foreign Remove deleted a song, %d left", len(left))
	}

	// Deleting the playlist must cascade to its songs.
	if err := repos.Playlists.Delete(ctx, aliceID, pl.ID); err != nil {
		t.Fatalf("delete playlist: %v", err)
	}
	left, err := repos.Songs.ListByPlaylist(ctx, pl.ID)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected cascade to remove songs, %d left", len(left))
	}
}
