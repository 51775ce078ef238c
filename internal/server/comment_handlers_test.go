package server

import (
	"net/http"
	"testing"
	"time"

	"waxclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOwnershipEndpoints(t *testing.T) {
	app, _, db := newTestApp(t)
	seedClubWithPost(t, db)
	require.NoError(t, db.Create(&models.Comment{
		Username: "alice",
		Body:     "First pressing or nothing.",
		PostID:   1,
		PostedAt: time.Now().UTC(),
	}).Error)

	t.Run("author updates the body", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPatch, "/api/comments/1", map[string]string{
			"comment": "Any pressing will do, actually.",
		})
		resp, err := app.Test(asUser(t, req, "alice", false))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		comment := body["comment"].(map[string]any)
		assert.Equal(t, "Any pressing will do, actually.", comment["comment"])
	})

	t.Run("blank replacement is rejected", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPatch, "/api/comments/1", map[string]string{
			"comment": " ",
		})
		resp, err := app.Test(asUser(t, req, "alice", false))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("non-author cannot touch it", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPatch, "/api/comments/1", map[string]string{
			"comment": "Vandalism.",
		})
		resp, err := app.Test(asUser(t, req, "bob", false))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("author deletes", func(t *testing.T) {
		resp, err := app.Test(asUser(t, jsonRequest(t, http.MethodDelete, "/api/comments/1", nil), "alice", false))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Deleted comment with ID 1.", body["message"])

		var count int64
		db.Model(&models.Comment{}).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("missing comment is a 404", func(t *testing.T) {
		resp, err := app.Test(asUser(t, jsonRequest(t, http.MethodDelete, "/api/comments/1", nil), "alice", false))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSearchAlbumsValidation(t *testing.T) {
	app, _, db := newTestApp(t)
	seedUser(t, db, "alice", "SpinIt1234", false)

	t.Run("requires authentication", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/albums/search?title=head+hunters", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("requires a title or artist", func(t *testing.T) {
		resp, err := app.Test(asUser(t, jsonRequest(t, http.MethodGet, "/api/albums/search", nil), "alice", false))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "At least one of title or artist is required.", body["error"])
	})
}
