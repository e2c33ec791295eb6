package repository

import (
	"context"
	"regexp"
	"testing"

	"playlist_manager/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockSongRepo(t *testing.T) (*SongSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewSongSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func songRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "playlist_id", "titulo", "artista", "ruta", "duration", "orden"})
}

func TestSongSQLite_Add_FirstSongGetsOrderZero(t *testing.T) {
	repo, mock, cleanup := newMockSongRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertSongSQL)).
		WithArgs(9, "X", "A", "/x.mp3", nil, 9).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectSongByIDSQL)).
		WithArgs(int64(21)).
		WillReturnRows(songRows().AddRow(21, 9, "X", "A", "/x.mp3", nil, 0))

	s, err := repo.Add(context.Background(), 9, models.Song{Title: "X", Artist: "A", Path: "/x.mp3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != 21 || s.Order != 0 {
		t.Fatalf("expected id=21 orden=0, got %+v", s)
	}
	if s.Duration != nil {
		t.Fatalf("expected nil duration, got %v", *s.Duration)
	}
}

func TestSongSQLite_Add_WithDuration(t *testing.T) {
	repo, mock, cleanup := newMockSongRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertSongSQL)).
		WithArgs(9, "Y", "B", "/y.mp3", int64(215), 9).
		WillReturnResult(sqlmock.NewResult(22, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectSongByIDSQL)).
		WithArgs(int64(22)).
		WillReturnRows(songRows().AddRow(22, 9, "Y", "B", "/y.mp3", 215, 3))

	d := 215
	s, err := repo.Add(context.Background(), 9, models.Song{Title: "Y", Artist: "B", Path: "/y.mp3", Duration: &d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Order != 3 {
		t.Fatalf("expected orden=3 (appended), got %d", s.Order)
	}
	if s.Duration == nil || *s.Duration != 215 {
		t.Fatalf("expected duration=215, got %+v", s.Duration)
	}
}

func TestSongSQLite_ListByPlaylist_NullColumns(t *testing.T) {
	repo, mock, cleanup := newMockSongRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectSongsByPlaylistSQL)).
		WithArgs(9).
		WillReturnRows(songRows().
			AddRow(21, 9, nil, nil, nil, nil, 0).
			AddRow(22, 9, "Y", "B", "/y.mp3", 215, 1))

	songs, err := repo.ListByPlaylist(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(songs) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(songs))
	}
	if songs[0].Title != "" || songs[0].Duration != nil {
		t.Fatalf("expected zero values for NULL columns, got %+v", songs[0])
	}
	if songs[1].Order != 1 {
		t.Fatalf("expected second song orden=1, got %d", songs[1].Order)
	}
}

func TestSongSQLite_Remove_ScopesDeleteToOwner(t *testing.T) {
	repo, mock, cleanup := newMockSongRepo(t)
	defer cleanup()

	// args: song id, playlist id, playlist id (ownership subquery), user id
	mock.ExpectExec(regexp.QuoteMeta(deleteSongSQL)).
		WithArgs(21, 9, 9, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Remove(context.Background(), 3, 9, 21); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSongSQLite_Remove_NoOpOnForeignSong(t *testing.T) {
	repo, mock, cleanup := newMockSongRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteSongSQL)).
		WithArgs(21, 9, 9, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Remove(context.Background(), 3, 9, 21); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSongSQLite_Clear(t *testing.T) {
	repo, mock, cleanup := newMockSongRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(clearSongsSQL)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.Clear(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
