package service

import (
	"context"

	"playlist_manager/internal/models"
	"playlist_manager/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (*models.User, string, error)
	SignIn(username, password string) (*models.User, string, error)
	ParseToken(accessToken string) (*Claims, error)
	CurrentUser(id int) (*models.User, error)
}

// Playlists exposes playlist CRUD scoped to the authenticated user. Every
// method treats userID as a filter: foreign playlists behave exactly like
// missing ones.
type Playlists interface {
	List(ctx context.Context, userID int) ([]models.Playlist, error)
	Create(ctx context.Context, userID int, name string) (*models.Playlist, error)
	Get(ctx context.Context, userID, playlistID int) (*models.Playlist, []models.Song, error)
	Rename(ctx context.Context, userID, playlistID int, name string) (*models.Playlist, error)
	Delete(ctx context.Context, userID, playlistID int) error
}

// Songs exposes song mutation within an owned playlist.
type Songs interface {
	Add(ctx context.Context, userID, playlistID int, input SongInput) (*models.Song, error)
	Remove(ctx context.Context, userID, playlistID, songID int) error
	Clear(ctx context.Context, userID, playlistID int) error
}

// SongInput is the caller-supplied part of a song entry; the order index is
// assigned by the store.
type SongInput struct {
	Title    string
	Artist   string
	Path     string
	Duration *int
}

type Service struct {
	Authorization
	Playlists
	Songs
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, tokenSecret string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokenSecret),
		Playlists:     NewPlaylistService(repos.Playlists, repos.Songs),
		Songs:         NewSongService(repos.Playlists, repos.Songs),
	}
}
