package server

import (
	"fmt"
	"strings"
	"time"

	"waxclub/internal/middleware"
	"waxclub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type updatePostRequest struct {
	Content   string `json:"content"`
	RecTracks string `json:"rec_tracks"`
}

type createCommentRequest struct {
	Comment string `json:"comment"`
}

// attachAlbums joins cached album metadata onto a post list in one query.
func (s *Server) attachAlbums(c *fiber.Ctx, posts []models.Post) error {
	ids := make([]int, 0, len(posts))
	seen := make(map[int]bool)
	for _, post := range posts {
		if !seen[post.DiscogsID] {
			seen[post.DiscogsID] = true
			ids = append(ids, post.DiscogsID)
		}
	}

	albums, err := s.albumRepo.GetSome(c.UserContext(), ids)
	if err != nil {
		return err
	}
	byID := make(map[int]*models.Album, len(albums))
	for i := range albums {
		byID[albums[i].DiscogsID] = &albums[i]
	}
	for i := range posts {
		posts[i].Album = byID[posts[i].DiscogsID]
	}
	return nil
}

// GetPosts lists posts with album metadata, optionally scoped to one club.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	var clubID uint
	if raw := c.Query("clubId"); raw != "" {
		id, ok := parseIDParam(raw)
		if !ok {
			return models.RespondWithAppError(c, models.NewValidationError("Club ID must be an integer."))
		}
		clubID = id
	}

	posts, err := s.postRepo.List(c.UserContext(), clubID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if err := s.attachAlbums(c, posts); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// GetPost returns a post with its comments, commenter profile images, and
// full album metadata including genres.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := parseIDParam(c.Params("postId"))
	if !ok {
		return models.RespondWithAppError(c, models.NewValidationError("Post ID must be an integer."))
	}
	ctx := c.UserContext()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if post == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("Post with ID %d not found.", postID)))
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	usernames := make([]string, 0, len(comments))
	seen := make(map[string]bool)
	for _, comment := range comments {
		if !seen[comment.Username] {
			seen[comment.Username] = true
			usernames = append(usernames, comment.Username)
		}
	}
	commenters, err := s.userRepo.GetSome(ctx, usernames)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	imgByUser := make(map[string]string, len(commenters))
	for _, u := range commenters {
		imgByUser[u.Username] = u.ProfileImgURL
	}
	for i := range comments {
		comments[i].User = &models.User{
			Username:      comments[i].Username,
			ProfileImgURL: imgByUser[comments[i].Username],
		}
	}
	post.Comments = comments

	album, err := s.albumRepo.Get(ctx, post.DiscogsID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if album != nil {
		genres, err := s.albumRepo.GenresForAlbum(ctx, album.DiscogsID)
		if err != nil {
			return models.RespondWithAppError(c, models.NewInternalError(err))
		}
		album.Genres = genres
	}
	post.Album = album

	return c.JSON(fiber.Map{"post": post})
}

// GetRecentPosts lists posts from every club the given user belongs to.
func (s *Server) GetRecentPosts(c *fiber.Ctx) error {
	username := c.Params("username")
	ctx := c.UserContext()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if user == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("User %s not found.", username)))
	}

	memberships, err := s.membershipRepo.ListByUsername(ctx, username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	clubIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		clubIDs = append(clubIDs, m.ClubID)
	}

	posts, err := s.postRepo.ListForClubs(ctx, clubIDs)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if err := s.attachAlbums(c, posts); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// VoteOnPost records or flips the actor's vote on a post. Only members of
// the post's club may vote.
func (s *Server) VoteOnPost(c *fiber.Ctx) error {
	postID, ok := parseIDParam(c.Params("postId"))
	if !ok {
		return models.RespondWithAppError(c, models.NewValidationError("Post ID must be an integer."))
	}
	ctx := c.UserContext()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if post == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("Post with ID %d not found.", postID)))
	}

	var liked bool
	switch strings.ToLower(c.Params("type")) {
	case "up":
		liked = true
	case "down":
		liked = false
	default:
		return models.RespondWithAppError(c,
			models.NewValidationError("Vote type must be up or down (case insensitive)."))
	}

	actor := middleware.ActorFromCtx(c)
	isMember, err := s.membership.CheckMembership(ctx, actor.Username, post.ClubID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if !isMember {
		return models.RespondWithAppError(c, models.NewUnauthorizedError(
			fmt.Sprintf("Sorry, you must be a member of club with ID %d to vote on post %d", post.ClubID, postID)))
	}

	message, err := s.votes.HandleVote(ctx, postID, actor.Username, liked)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}

// CreateComment adds a comment to a post. Only members of the post's club
// may comment.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, ok := parseIDParam(c.Params("postId"))
	if !ok {
		return models.RespondWithAppError(c, models.NewValidationError("Post ID must be an integer."))
	}
	ctx := c.UserContext()

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if post == nil {
		return models.RespondWithAppError(c,
			models.NewNotFoundError(fmt.Sprintf("Post with ID %d not found.", postID)))
	}

	actor := middleware.ActorFromCtx(c)
	isMember, err := s.membership.CheckMembership(ctx, actor.Username, post.ClubID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if !isMember {
		return models.RespondWithAppError(c, models.NewUnauthorizedError(
			fmt.Sprintf("Sorry, you must be a member of club with ID %d to comment on post %d", post.ClubID, postID)))
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Comment) == "" {
		return models.RespondWithAppError(c, models.NewValidationError("Comment body must not be empty."))
	}

	comment := &models.Comment{
		Username: actor.Username,
		Body:     req.Comment,
		PostID:   post.ID,
		PostedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	user, err := s.userRepo.GetByUsername(ctx, actor.Username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if user != nil {
		comment.User = &models.User{Username: user.Username, ProfileImgURL: user.ProfileImgURL}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comment": comment})
}

// UpdatePost changes a post's content or recommended tracks. The ownership
// guard has already resolved the post.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	post := PostFromCtx(c)
	ctx := c.UserContext()

	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Content != "" {
		post.Content = req.Content
	}
	if req.RecTracks != "" {
		post.RecTracks = req.RecTracks
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Updated post with ID %d.", post.ID),
		"post":    post,
	})
}

// DeletePost removes a post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	post := PostFromCtx(c)

	if err := s.postRepo.Delete(c.UserContext(), post.ID); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Deleted post with ID %d.", post.ID)})
}
