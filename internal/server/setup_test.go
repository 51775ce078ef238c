package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"waxclub/internal/config"
	"waxclub/internal/middleware"
	"waxclub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp builds a server over an in-memory store with the full route
// table mounted. Redis is left nil; rate limiting is disabled outside
// production and the handlers tolerate a missing cache.
func newTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Club{},
		&models.Membership{},
		&models.Invitation{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.Album{},
		&models.AlbumGenre{},
	))

	cfg := &config.Config{
		Port:          "3000",
		JWTSecret:     "server-test-secret",
		AuthCookieTTL: 24 * time.Hour,
		Env:           "test",
	}
	middleware.InitMiddleware(cfg)

	s := NewServerWithDB(cfg, db, nil)

	app := fiber.New()
	app.Use(middleware.AuthenticateToken)
	s.SetupRoutes(app)

	return app, s, db
}

// seedUser inserts a user whose password is the bcrypt hash of the given
// plaintext so login flows can be exercised.
func seedUser(t *testing.T, db *gorm.DB, username, password string, admin bool) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		Admin:    admin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// asUser attaches a session cookie for the given identity.
func asUser(t *testing.T, req *http.Request, username string, admin bool) *http.Request {
	t.Helper()

	token, err := middleware.GenerateToken(username, admin)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
