package handlers

import (
	"context"

	"playlist_manager/internal/models"
	"playlist_manager/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser  *models.User
	signUpToken string
	signUpErr   error

	signInUser  *models.User
	signInToken string
	signInErr   error

	parseClaims *service.Claims
	parseErr    error

	currentUser *models.User
	currentErr  error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignInUsername string
	lastSignInPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (*models.User, string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpUser, m.signUpToken, m.signUpErr
}
func (m *mockAuth) SignIn(username, password string) (*models.User, string, error) {
	m.lastSignInUsername = username
	m.lastSignInPassword = password
	return m.signInUser, m.signInToken, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}
func (m *mockAuth) CurrentUser(id int) (*models.User, error) {
	return m.currentUser, m.currentErr
}

type mockPlaylists struct {
	listResp  []models.Playlist
	listErr   error
	createPl  *models.Playlist
	createErr error
	getPl     *models.Playlist
	getSongs  []models.Song
	getErr    error
	renamePl  *models.Playlist
	renameErr error
	deleteErr error

	lastUserID     int
	lastPlaylistID int
	lastName       string
	deleteCalls    int
}

func (m *mockPlaylists) List(ctx context.Context, userID int) ([]models.Playlist, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}
func (m *mockPlaylists) Create(ctx context.Context, userID int, name string) (*models.Playlist, error) {
	m.lastUserID = userID
	m.lastName = name
	return m.createPl, m.createErr
}
func (m *mockPlaylists) Get(ctx context.Context, userID, playlistID int) (*models.Playlist, []models.Song, error) {
	m.lastUserID = userID
	m.lastPlaylistID = playlistID
	return m.getPl, m.getSongs, m.getErr
}
func (m *mockPlaylists) Rename(ctx context.Context, userID, playlistID int, name string) (*models.Playlist, error) {
	m.lastUserID = userID
	m.lastPlaylistID = playlistID
	m.lastName = name
	return m.renamePl, m.renameErr
}
func (m *mockPlaylists) Delete(ctx context.Context, userID, playlistID int) error {
	m.lastUserID = userID
	m.lastPlaylistID = playlistID
	m.deleteCalls++
	return m.deleteErr
}

type mockSongs struct {
	addSong  *models.Song
	addErr   error
	removeErr error
	clearErr  error

	lastUserID     int
	lastPlaylistID int
	lastSongID     int
	lastInput      service.SongInput
	removeCalls    int
	clearCalls     int
}

func (m *mockSongs) Add(ctx context.Context, userID, playlistID int, input service.SongInput) (*models.Song, error) {
	m.lastUserID = userID
	m.lastPlaylistID = playlistID
	m.lastInput = input
	return m.addSong, m.addErr
}
func (m *mockSongs) Remove(ctx context.Context, userID, playlistID, songID int) error {
	m.lastUserID = userID
	m.lastPlaylistID = playlistID
	m.lastSongID = songID
	m.removeCalls++
	return m.removeErr
}
func (m *mockSongs) Clear(ctx context.Context, userID, playlistID int) error {
	m.lastUserID = userID
	m.lastPlaylistID = playlistID
	m.clearCalls++
	return m.clearErr
}

// newTestRouter wires the full route table with mocked services and no
// static dir.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, "")
	return h.InitRoutes()
}

// authedClaims is a convenience for middleware-passing requests.
func authedClaims(userID int, username string) *service.Claims {
	return &service.Claims{UserID: userID, Username: username}
}
