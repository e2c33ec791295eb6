package repository

import (
	"context"
	"database/sql"

	"playlist_manager/internal/models"
	"playlist_manager/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

// Playlists is the ownership-enforcing playlist store. Every method takes
// the requesting user's id and filters by it in SQL; a playlist that exists
// but belongs to someone else is indistinguishable from one that doesn't
// exist at all.
type Playlists interface {
	ListByUser(ctx context.Context, userID int) ([]models.Playlist, error)
	Create(ctx context.Context, userID int, name string) (*models.Playlist, error)
	GetOwned(ctx context.Context, userID, playlistID int) (*models.Playlist, error)
	Rename(ctx context.Context, userID, playlistID int, name string) (*models.Playlist, error)
	Delete(ctx context.Context, userID, playlistID int) error
}

type Songs interface {
	ListByPlaylist(ctx context.Context, playlistID int) ([]models.Song, error)
	Add(ctx context.Context, playlistID int, s models.Song) (*models.Song, error)
	Remove(ctx context.Context, userID, playlistID, songID int) error
	Clear(ctx context.Context, playlistID int) error
}

type Repository struct {
	Auth      Authorization
	Playlists Playlists
	Songs     Songs
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Auth:      NewUserRepository(sqlDB),
		Playlists: NewPlaylistSQLite(sqlDB),
		Songs:     NewSongSQLite(sqlDB),
	}
}

// InitDB opens the SQLite file and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
