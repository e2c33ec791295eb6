package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"playlist_manager/internal/models"
)

type PlaylistSQLite struct {
	db *sql.DB
}

func NewPlaylistSQLite(db *sql.DB) *PlaylistSQLite {
	return &PlaylistSQLite{db: db}
}

var _ Playlists = (*PlaylistSQLite)(nil)

const (
	selectPlaylistsByUserSQL = `
		SELECT id, user_id, nombre, created_at FROM playlists
		WHERE user_id = ? ORDER BY created_at DESC, id DESC
	`
	insertPlaylistSQL = `INSERT INTO playlists (user_id, nombre, created_at) VALUES (?, ?, ?)`

	// The user_id filter doubles as the ownership check: a playlist owned by
	// someone else scans like a missing row.
	selectOwnedPlaylistSQL = `
		SELECT id, user_id, nombre, created_at FROM playlists
		WHERE id = ? AND user_id = ?
	`
	renamePlaylistSQL = `UPDATE playlists SET nombre = ? WHERE id = ? AND user_id = ?`
	deletePlaylistSQL = `DELETE FROM playlists WHERE id = ? AND user_id = ?`
)

const timestampLayout = "2006-01-02 15:04:05"

// ListByUser returns the user's playlists, newest first.
func (r *PlaylistSQLite) ListByUser(ctx context.Context, userID int) ([]models.Playlist, error) {
	rows, err := r.db.QueryContext(ctx, selectPlaylistsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list playlists for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Playlist, 0, 16)
	for rows.Next() {
		var p models.Playlist
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan playlist row: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a playlist for the user and returns the stored row.
func (r *PlaylistSQLite) Create(ctx context.Context, userID int, name string) (*models.Playlist, error) {
	now := time.Now().UTC().Format(timestampLayout)
	res, err := r.db.ExecContext(ctx, insertPlaylistSQL, userID, name, now)
	if err != nil {
		return nil, fmt.Errorf("insert playlist %q for user %d: %w", name, userID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for playlist %q: %w", name, err)
	}
	return r.GetOwned(ctx, userID, int(lastID))
}

// GetOwned fetches a playlist only if it belongs to the user.
// Returns (nil, nil) both when the id doesn't exist and when it belongs to
// another user, so callers cannot tell the two apart.
func (r *PlaylistSQLite) GetOwned(ctx context.Context, userID, playlistID int) (*models.Playlist, error) {
	var p models.Playlist
	err := r.db.QueryRowContext(ctx, selectOwnedPlaylistSQL, playlistID, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select playlist %d: %w", playlistID, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

// Rename updates the playlist name when owned by the user. Returns (nil, nil)
// when nothing matched (missing or not owned).
func (r *PlaylistSQLite) Rename(ctx context.Context, userID, playlistID int, name string) (*models.Playlist, error) {
	res, err := r.db.ExecContext(ctx, renamePlaylistSQL, name, playlistID, userID)
	if err != nil {
		return nil, fmt.Errorf("rename playlist %d: %w", playlistID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for playlist %d rename: %w", playlistID, err)
	}
	if n == 0 {
		return nil, nil
	}
	return r.GetOwned(ctx, userID, playlistID)
}

// Delete removes the playlist when owned by the user; deleting a missing or
// foreign playlist is a no-op. Songs go with it via the FK cascade.
func (r *PlaylistSQLite) Delete(ctx context.Context, userID, playlistID int) error {
	if _, err := r.db.ExecContext(ctx, deletePlaylistSQL, playlistID, userID); err != nil {
		return fmt.Errorf("delete playlist %d: %w", playlistID, err)
	}
	return nil
}
