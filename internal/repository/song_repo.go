package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"playlist_manager/internal/models"
)

type SongSQLite struct {
	db *sql.DB
}

func NewSongSQLite(db *sql.DB) *SongSQLite {
	return &SongSQLite{db: db}
}

var _ Songs = (*SongSQLite)(nil)

const (
	selectSongsByPlaylistSQL = `
		SELECT id, playlist_id, titulo, artista, ruta, duration, orden
		FROM playlist_songs WHERE playlist_id = ? ORDER BY orden
	`

	// Order index is computed in the insert itself: max for the playlist + 1,
	// or 0 for the first song. Single statement, so no read-modify-write race.
	insertSongSQL = `
		INSERT INTO playlist_songs (playlist_id, titulo, artista, ruta, duration, orden)
		VALUES (?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(orden) + 1 FROM playlist_songs WHERE playlist_id = ?), 0))
	`
	selectSongByIDSQL = `
		SELECT id, playlist_id, titulo, artista, ruta, duration, orden
		FROM playlist_songs WHERE id = ?
	`

	// The subquery re-verifies playlist ownership so one user cannot delete
	// songs out of another user's playlist by guessing ids.
	deleteSongSQL = `
		DELETE FROM playlist_songs
		WHERE id = ? AND playlist_id = ?
		  AND playlist_id IN (SELECT id FROM playlists WHERE id = ? AND user_id = ?)
	`
	clearSongsSQL = `DELETE FROM playlist_songs WHERE playlist_id = ?`
)

// ListByPlaylist returns the playlist's songs ordered by their order index.
// Ownership of the playlist is the caller's responsibility (service layer).
func (r *SongSQLite) ListByPlaylist(ctx context.Context, playlistID int) ([]models.Song, error) {
	rows, err := r.db.QueryContext(ctx, selectSongsByPlaylistSQL, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list songs for playlist %d: %w", playlistID, err)
	}
	defer rows.Close()

	out := make([]models.Song, 0, 32)
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Add inserts a song at the end of the playlist and returns the stored row
// with its assigned order index.
func (r *SongSQLite) Add(ctx context.Context, playlistID int, s models.Song) (*models.Song, error) {
	var duration sql.NullInt64
	if s.Duration != nil {
		duration = sql.NullInt64{Int64: int64(*s.Duration), Valid: true}
	}

	res, err := r.db.ExecContext(ctx, insertSongSQL,
		playlistID, s.Title, s.Artist, s.Path, duration, playlistID)
	if err != nil {
		return nil, fmt.Errorf("insert song into playlist %d: %w", playlistID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for song: %w", err)
	}

	row := r.db.QueryRowContext(ctx, selectSongByIDSQL, lastID)
	stored, err := scanSong(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("song %d vanished after insert", lastID)
		}
		return nil, err
	}
	return &stored, nil
}

// Remove deletes a song only when it belongs to the given playlist AND that
// playlist belongs to the given user. Removing a missing or foreign song is
// a no-op.
func (r *SongSQLite) Remove(ctx context.Context, userID, playlistID, songID int) error {
	if _, err := r.db.ExecContext(ctx, deleteSongSQL, songID, playlistID, playlistID, userID); err != nil {
		return fmt.Errorf("delete song %d from playlist %d: %w", songID, playlistID, err)
	}
	return nil
}

// Clear bulk-deletes every song under the playlist. Ownership is checked by
// the caller before this runs.
func (r *SongSQLite) Clear(ctx context.Context, playlistID int) error {
	if _, err := r.db.ExecContext(ctx, clearSongsSQL, playlistID); err != nil {
		return fmt.Errorf("clear songs for playlist %d: %w", playlistID, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSong(sc scanner) (models.Song, error) {
	var (
		s        models.Song
		title    sql.NullString
		artist   sql.NullString
		path     sql.NullString
		duration sql.NullInt64
	)
	if err := sc.Scan(&s.ID, &s.PlaylistID, &title, &artist, &path, &duration, &s.Order); err != nil {
		return models.Song{}, fmt.Errorf("scan song row: %w", err)
	}
	s.Title = title.String
	s.Artist = artist.String
	s.Path = path.String
	if duration.Valid {
		d := int(duration.Int64)
		s.Duration = &d
	}
	return s, nil
}
