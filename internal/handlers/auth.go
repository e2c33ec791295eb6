package handlers

import (
	"errors"
	"net/http"

	"playlist_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// User-facing messages kept verbatim from the original wire contract.
const (
	msgCredentialsRequired = "username y password (>=4)"
	msgUserExists          = "Usuario ya existe"
	msgUserNotFound        = "Usuario inexistente"
	msgWrongPassword       = "Contraseña incorrecta"
)

// Single, shared credentials payload for both register and login.
type authCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials (password >= 4 chars)"
// @Success      200   {object}  map[string]interface{}  "user, token"
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *Handler) register(c *gin.Context) {
	var input authCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCredentialsRequired})
		return
	}

	user, token, err := h.services.SignUp(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgCredentialsRequired})
		case errors.Is(err, service.ErrUserExists):
			if h.log != nil {
				h.log.Infow("register_duplicate_username", "username", input.Username)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUserExists})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "register_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "user, token"
// @Failure      400   {object}  map[string]string
// @Router       /api/login [post]
func (h *Handler) login(c *gin.Context) {
	var input authCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCredentialsRequired})
		return
	}

	user, token, err := h.services.SignIn(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUserNotFound})
		case errors.Is(err, service.ErrWrongPassword):
			if h.log != nil {
				h.log.Infow("login_wrong_password", "username", input.Username)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": msgWrongPassword})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "login_failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "user"
// @Failure      401  {object}  map[string]string
// @Router       /api/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	user, err := h.services.CurrentUser(c.GetInt(ctxUserID))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			// valid token but the account is gone
			c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "error interno", "me_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
