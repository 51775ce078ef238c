package repository

import (
	"context"
	"testing"
	"time"

	"waxclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	db.Create(&models.User{Username: "alice", Email: "alice@example.com", Password: "hash"})
	db.Create(&models.Club{Name: "Deep Cuts", Founder: "alice", Founded: time.Now()})
	db.Create(&models.Club{Name: "Wax Poets", Founder: "alice", Founded: time.Now()})

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &models.Post{ClubID: 1, DiscogsID: 100, PostedBy: "alice", PostedAt: now}))
	require.NoError(t, repo.Create(ctx, &models.Post{ClubID: 1, DiscogsID: 101, PostedBy: "alice", PostedAt: now}))
	require.NoError(t, repo.Create(ctx, &models.Post{ClubID: 2, DiscogsID: 102, PostedBy: "alice", PostedAt: now}))

	t.Run("List scoped to a club, newest first", func(t *testing.T) {
		posts, err := repo.List(ctx, 1)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.True(t, posts[0].ID > posts[1].ID)
	})

	t.Run("List with zero club returns everything", func(t *testing.T) {
		posts, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, posts, 3)
	})

	t.Run("ListForClubs", func(t *testing.T) {
		posts, err := repo.ListForClubs(ctx, []uint{1, 2})
		require.NoError(t, err)
		assert.Len(t, posts, 3)

		none, err := repo.ListForClubs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Update", func(t *testing.T) {
		post, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, post)

		post.Content = "revisiting this one"
		require.NoError(t, repo.Update(ctx, post))

		fetched, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "revisiting this one", fetched.Content)
	})

	t.Run("Delete and DeleteByClub", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 3))
		post, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Nil(t, post)

		require.NoError(t, repo.DeleteByClub(ctx, 1))
		posts, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	db.Create(&models.User{Username: "alice", Email: "alice@example.com", Password: "hash"})
	db.Create(&models.Club{Name: "Deep Cuts", Founder: "alice", Founded: time.Now()})
	db.Create(&models.Post{ClubID: 1, DiscogsID: 100, PostedBy: "alice", PostedAt: time.Now()})

	older := time.Now().UTC().Add(-time.Hour)
	newer := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &models.Comment{Username: "alice", Body: "second", PostID: 1, PostedAt: newer}))
	require.NoError(t, repo.Create(ctx, &models.Comment{Username: "alice", Body: "first", PostID: 1, PostedAt: older}))

	t.Run("ListByPost orders oldest first", func(t *testing.T) {
		comments, err := repo.ListByPost(ctx, 1)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "first", comments[0].Body)
		assert.Equal(t, "second", comments[1].Body)
	})

	t.Run("Update", func(t *testing.T) {
		comment, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, comment)

		comment.Body = "edited"
		require.NoError(t, repo.Update(ctx, comment))

		fetched, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "edited", fetched.Body)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 1))
		comment, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, comment)
	})
}

func TestVoteRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	db.Create(&models.User{Username: "alice", Email: "alice@example.com", Password: "hash"})
	db.Create(&models.Club{Name: "Deep Cuts", Founder: "alice", Founded: time.Now()})
	db.Create(&models.Post{ClubID: 1, DiscogsID: 100, PostedBy: "alice", PostedAt: time.Now()})

	t.Run("Create and Get", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Vote{PostID: 1, Username: "alice", Liked: true}))

		vote, err := repo.Get(ctx, 1, "alice")
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.True(t, vote.Liked)
	})

	t.Run("second vote by the same user hits the composite primary key", func(t *testing.T) {
		err := repo.Create(ctx, &models.Vote{PostID: 1, Username: "alice", Liked: false})
		require.Error(t, err)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("UpdateLiked flips in place", func(t *testing.T) {
		require.NoError(t, repo.UpdateLiked(ctx, 1, "alice", false))

		vote, err := repo.Get(ctx, 1, "alice")
		require.NoError(t, err)
		require.NotNil(t, vote)
		assert.False(t, vote.Liked)

		votes, err := repo.ListByPost(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, votes, 1)
	})
}
