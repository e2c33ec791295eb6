package models

import "time"

// Playlist belongs to exactly one user; UserID is set at creation and
// never changes afterwards.
//
// JSON field names follow the wire format the frontend expects
// (Spanish, inherited from the original schema).
type Playlist struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
}

// Song is a single entry inside a playlist. Order is assigned at insert
// time: max order for the playlist + 1, or 0 for the first song. There is
// no reordering operation.
type Song struct {
	ID         int    `json:"id"`
	PlaylistID int    `json:"-"`
	Title      string `json:"titulo"`
	Artist     string `json:"artista"`
	Path       string `json:"ruta"`
	Duration   *int   `json:"duration"` // seconds; null when unknown
	Order      int    `json:"orden"`
}
