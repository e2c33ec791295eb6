package service

import (
	"context"
	"errors"
	"strings"

	"playlist_manager/internal/models"
	"playlist_manager/internal/repository"
)

// Domain errors for playlist flows. ErrPlaylistNotFound covers both a
// missing id and an id owned by another user on purpose.
var (
	ErrNameRequired     = errors.New("playlist name required")
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// PlaylistService validates input and enforces ownership on top of the
// playlist store.
type PlaylistService struct {
	playlists repository.Playlists
	songs     repository.Songs
}

func NewPlaylistService(playlists repository.Playlists, songs repository.Songs) *PlaylistService {
	return &PlaylistService{playlists: playlists, songs: songs}
}

func (s *PlaylistService) List(ctx context.Context, userID int) ([]models.Playlist, error) {
	return s.playlists.ListByUser(ctx, userID)
}

func (s *PlaylistService) Create(ctx context.Context, userID int, name string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	return s.playlists.Create(ctx, userID, name)
}

// Get returns the playlist together with its songs in order. A foreign or
// missing playlist yields ErrPlaylistNotFound either way.
func (s *PlaylistService) Get(ctx context.Context, userID, playlistID int) (*models.Playlist, []models.Song, error) {
	p, err := s.playlists.GetOwned(ctx, userID, playlistID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, ErrPlaylistNotFound
	}

	songs, err := s.songs.ListByPlaylist(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}
	return p, songs, nil
}

func (s *PlaylistService) Rename(ctx context.Context, userID, playlistID int, name string) (*models.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	p, err := s.playlists.Rename(ctx, userID, playlistID, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlaylistNotFound
	}
	return p, nil
}

// Delete removes an owned playlist; songs cascade in the store. Deleting a
// missing or foreign playlist succeeds silently (observable contract).
func (s *PlaylistService) Delete(ctx context.Context, userID, playlistID int) error {
	return s.playlists.Delete(ctx, userID, playlistID)
}
