package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"playlist_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const msgSongPlaylistNotFound = "Playlist no encontrada"

// Request DTO for adding a song; all fields optional like the original.
type songInput struct {
	Title    string `json:"titulo"`
	Artist   string `json:"artista"`
	Path     string `json:"ruta"`
	Duration *int   `json:"duration"`
}

// @Summary      Add song to playlist
// @Tags         songs
// @Accept       json
// @Produce      json
// @Param        id    path      int        true  "Playlist id"
// @Param        body  body      songInput  true  "Song metadata"
// @Success      200   {object}  map[string]interface{}  "song"
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/playlists/{id}/songs [post]
// @Security     BearerAuth
func (h *Handler) addSong(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgSongPlaylistNotFound})
		return
	}

	var input songInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo inválido"})
		return
	}

	song, err := h.services.Songs.Add(c.Request.Context(), c.GetInt(ctxUserID), id, service.SongInput{
		Title:    input.Title,
		Artist:   input.Artist,
		Path:     input.Path,
		Duration: input.Duration,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgSongPlaylistNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "song_add_failed", err, "playlist_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"song": song})
}

// @Summary      Remove song from playlist
// @Description  Removing a missing or foreign song still reports ok.
// @Tags         songs
// @Produce      json
// @Param        id      path      int  true  "Playlist id"
// @Param        songId  path      int  true  "Song id"
// @Success      200     {object}  map[string]bool  "ok"
// @Failure      401     {object}  map[string]string
// @Router       /api/playlists/{id}/songs/{songId} [delete]
// @Security     BearerAuth
func (h *Handler) deleteSong(c *gin.Context) {
	id, errID := strconv.Atoi(c.Param("id"))
	songID, errSong := strconv.Atoi(c.Param("songId"))
	if errID != nil || errSong != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err := h.services.Songs.Remove(c.Request.Context(), c.GetInt(ctxUserID), id, songID); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "song_delete_failed", err,
			"playlist_id", id, "song_id", songID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary      Clear playlist
// @Tags         songs
// @Produce      json
// @Param        id   path      int  true  "Playlist id"
// @Success      200  {object}  map[string]bool  "ok"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/playlists/{id}/songs [delete]
// @Security     BearerAuth
func (h *Handler) clearSongs(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgSongPlaylistNotFound})
		return
	}

	if err := h.services.Songs.Clear(c.Request.Context(), c.GetInt(ctxUserID), id); err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgSongPlaylistNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "songs_clear_failed", err, "playlist_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
