// Package service contains the domain logic behind the HTTP handlers.
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"waxclub/internal/models"
	"waxclub/internal/repository"
)

// ClubPolicy configures how AuthorizeClubAccess decides access. All fields
// default to false, which requires plain club membership.
type ClubPolicy struct {
	// AdminSkipValidation allows admins through without resolving the club,
	// for routes where the club ID may be absent for admin callers.
	AdminSkipValidation bool
	// AllowPublic admits any actor when the club is public.
	AllowPublic bool
	// FounderOnly replaces the membership check with a founder equality
	// check; plain membership no longer suffices.
	FounderOnly bool
}

// GuardService decides whether an actor may act on a club, post, or comment.
// On allow it returns the resolved resource so downstream handlers do not
// re-fetch it; the decision and the object acted on are the same row read.
type GuardService struct {
	clubRepo       repository.ClubRepository
	membershipRepo repository.MembershipRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
}

// NewGuardService returns a new GuardService.
func NewGuardService(
	clubRepo repository.ClubRepository,
	membershipRepo repository.MembershipRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
) *GuardService {
	return &GuardService{
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
	}
}

// parsePositiveInt parses raw as a strictly positive integer. Unlike the
// lenient parsers in some clients, trailing garbage ("12abc") is rejected.
func parsePositiveInt(raw string) (uint, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

// AuthorizeClubAccess checks the actor against the club identified by
// rawClubID under the given policy. The returned club is nil when the
// admin-skip path was taken, a resolved club otherwise.
func (g *GuardService) AuthorizeClubAccess(ctx context.Context, actor *models.Actor, rawClubID string, policy ClubPolicy) (*models.Club, error) {
	if actor == nil {
		return nil, models.NewUnauthenticatedError("Must be logged in to access this route")
	}

	// Skip all other validation if admin should see route regardless
	if policy.AdminSkipValidation && actor.Admin {
		return nil, nil
	}

	clubID, ok := parsePositiveInt(rawClubID)
	if !ok {
		return nil, models.NewValidationError("Club ID must be an integer.")
	}

	club, err := g.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if club == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("Club with ID %d not found.", clubID))
	}

	if actor.Admin {
		return club, nil
	}

	var roleOk bool
	if policy.FounderOnly {
		roleOk = actor.Username == club.Founder
	} else {
		membership, err := g.membershipRepo.Get(ctx, actor.Username, clubID)
		if err != nil {
			return nil, err
		}
		roleOk = membership != nil
	}

	publicOk := policy.AllowPublic && club.IsPublic

	if roleOk || publicOk {
		return club, nil
	}

	return nil, models.NewUnauthorizedError(clubDenyMessage(policy))
}

// clubDenyMessage enumerates exactly the bypass conditions the policy
// configured; the wording is part of the API contract.
func clubDenyMessage(policy ClubPolicy) string {
	publicClause := ""
	if policy.AllowPublic {
		publicClause = ", a public club,"
	}
	roleClause := "club membership"
	if policy.FounderOnly {
		roleClause = "the club founder"
	}
	return fmt.Sprintf("Unauthorized: This route requires admin permissions%s or %s.", publicClause, roleClause)
}

// AuthorizeCommentAccess allows admins and the comment's author.
func (g *GuardService) AuthorizeCommentAccess(ctx context.Context, actor *models.Actor, rawCommentID string) (*models.Comment, error) {
	if actor == nil {
		return nil, models.NewUnauthenticatedError("Must be logged in to access this route")
	}

	commentID, ok := parsePositiveInt(rawCommentID)
	if !ok {
		return nil, models.NewValidationError("Comment ID must be an integer.")
	}

	comment, err := g.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("No comment found with the ID %d.", commentID))
	}

	if !actor.Admin && actor.Username != comment.Username {
		return nil, models.NewUnauthorizedError("Unauthorized: Must be admin or the user who made this comment to access this route.")
	}

	return comment, nil
}

// AuthorizePostAccess allows admins and the post's poster.
func (g *GuardService) AuthorizePostAccess(ctx context.Context, actor *models.Actor, rawPostID string) (*models.Post, error) {
	if actor == nil {
		return nil, models.NewUnauthenticatedError("Must be logged in to access this route")
	}

	postID, ok := parsePositiveInt(rawPostID)
	if !ok {
		return nil, models.NewValidationError("Post ID must be an integer.")
	}

	post, err := g.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, models.NewNotFoundError(fmt.Sprintf("Post with ID %d not found.", postID))
	}

	if !actor.Admin && actor.Username != post.PostedBy {
		return nil, models.NewUnauthorizedError("Unauthorized: Must be admin or the user who made this post to access this route.")
	}

	return post, nil
}

// AuthorizeSameUserOrAdmin allows admins and the named user themselves.
func (g *GuardService) AuthorizeSameUserOrAdmin(actor *models.Actor, targetUsername string) error {
	if actor == nil {
		return models.NewUnauthenticatedError("Must be logged in to access this route")
	}
	if !actor.Admin && actor.Username != targetUsername {
		return models.NewUnauthorizedError("Unauthorized: Must be admin or the user in the request parameter to access this route")
	}
	return nil
}
