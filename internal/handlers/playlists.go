package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"playlist_manager/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgNameRequired     = "Nombre requerido"
	msgPlaylistNotFound = "No encontrada"
)

// Request DTO for create/rename; the wire field is Spanish.
type playlistInput struct {
	Name string `json:"nombre"`
}

// playlistID pulls the :id path param. A non-numeric id behaves like a
// missing playlist, matching the masking rule.
func playlistID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgPlaylistNotFound})
		return 0, false
	}
	return id, true
}

// @Summary      List own playlists
// @Tags         playlists
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "playlists"
// @Failure      401  {object}  map[string]string
// @Router       /api/playlists [get]
// @Security     BearerAuth
func (h *Handler) listPlaylists(c *gin.Context) {
	playlists, err := h.services.Playlists.List(c.Request.Context(), c.GetInt(ctxUserID))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "playlists_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

// @Summary      Create playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        body  body      playlistInput  true  "Playlist name"
// @Success      200   {object}  map[string]interface{}  "playlist"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/playlists [post]
// @Security     BearerAuth
func (h *Handler) createPlaylist(c *gin.Context) {
	var input playlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNameRequired})
		return
	}

	playlist, err := h.services.Playlists.Create(c.Request.Context(), c.GetInt(ctxUserID), input.Name)
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgNameRequired})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "playlist_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlist": playlist})
}

// @Summary      Get playlist with songs
// @Tags         playlists
// @Produce      json
// @Param        id   path      int  true  "Playlist id"
// @Success      200  {object}  map[string]interface{}  "playlist, canciones"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/playlists/{id} [get]
// @Security     BearerAuth
func (h *Handler) getPlaylist(c *gin.Context) {
	id, ok := playlistID(c)
	if !ok {
		return
	}

	playlist, songs, err := h.services.Playlists.Get(c.Request.Context(), c.GetInt(ctxUserID), id)
	if err != nil {
		if errors.Is(err, service.ErrPlaylistNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgPlaylistNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "playlist_get_failed", err, "playlist_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlist": playlist, "canciones": songs})
}

// @Summary      Rename playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Playlist id"
// @Param        body  body      playlistInput  true  "New name"
// @Success      200   {object}  map[string]interface{}  "playlist"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/playlists/{id} [put]
// @Security     BearerAuth
func (h *Handler) renamePlaylist(c *gin.Context) {
	id, ok := playlistID(c)
	if !ok {
		return
	}

	var input playlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgNameRequired})
		return
	}

	playlist, err := h.services.Playlists.Rename(c.Request.Context(), c.GetInt(ctxUserID), id, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgNameRequired})
		case errors.Is(err, service.ErrPlaylistNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": msgPlaylistNotFound})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "playlist_rename_failed", err, "playlist_id", id)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlist": playlist})
}

// @Summary      Delete playlist
// @Description  Deleting a missing or foreign playlist still reports ok.
// @Tags         playlists
// @Produce      json
// @Param        id   path      int  true  "Playlist id"
// @Success      200  {object}  map[string]bool  "ok"
// @Failure      401  {object}  map[string]string
// @Router       /api/playlists/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePlaylist(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// nothing to delete either way
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if err := h.services.Playlists.Delete(c.Request.Context(), c.GetInt(ctxUserID), id); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "playlist_delete_failed", err, "playlist_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
