package service

import (
	"context"

	"playlist_manager/internal/models"
	"playlist_manager/internal/repository"
)

// SongService mutates songs inside a playlist the caller owns.
type SongService struct {
	playlists repository.Playlists
	songs     repository.Songs
}

func NewSongService(playlists repository.Playlists, songs repository.Songs) *SongService {
	return &SongService{playlists: playlists, songs: songs}
}

// Add appends a song to an owned playlist. The store assigns the order
// index (current max + 1, or 0 for an empty playlist).
func (s *SongService) Add(ctx context.Context, userID, playlistID int, input SongInput) (*models.Song, error) {
	p, err := s.playlists.GetOwned(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlaylistNotFound
	}

	return s.songs.Add(ctx, p.ID, models.Song{
		Title:    input.Title,
		Artist:   input.Artist,
		Path:     input.Path,
		Duration: input.Duration,
	})
}

// Remove deletes a single song; the store re-verifies playlist ownership in
// the same statement. A missing or foreign song is a silent no-op.
func (s *SongService) Remove(ctx context.Context, userID, playlistID, songID int) error {
	return s.songs.Remove(ctx, userID, playlistID, songID)
}

// Clear empties an owned playlist; an unowned one reads as not found.
func (s *SongService) Clear(ctx context.Context, userID, playlistID int) error {
	p, err := s.playlists.GetOwned(ctx, userID, playlistID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPlaylistNotFound
	}
	return s.songs.Clear(ctx, p.ID)
}
