package server

import (
	"waxclub/internal/middleware"
	"waxclub/internal/models"
	"waxclub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Locals keys for resources resolved by the guards. Handlers read these
// instead of re-fetching the row the authorization decision was made on.
const (
	ClubLocal    = "club"
	PostLocal    = "post"
	CommentLocal = "comment"
)

// ClubFromCtx returns the club resolved by RequireClubAccess, nil when the
// admin-skip path left no resource attached.
func ClubFromCtx(c *fiber.Ctx) *models.Club {
	if club, ok := c.Locals(ClubLocal).(*models.Club); ok {
		return club
	}
	return nil
}

// PostFromCtx returns the post resolved by RequirePostOwner.
func PostFromCtx(c *fiber.Ctx) *models.Post {
	if post, ok := c.Locals(PostLocal).(*models.Post); ok {
		return post
	}
	return nil
}

// CommentFromCtx returns the comment resolved by RequireCommentOwner.
func CommentFromCtx(c *fiber.Ctx) *models.Comment {
	if comment, ok := c.Locals(CommentLocal).(*models.Comment); ok {
		return comment
	}
	return nil
}

// RequireClubAccess guards a route with the club policy, reading the club
// ID from the named route parameter. On allow the resolved club is stored
// in locals for the handler.
func RequireClubAccess(guard *service.GuardService, param string, policy service.ClubPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		club, err := guard.AuthorizeClubAccess(c.UserContext(), middleware.ActorFromCtx(c), c.Params(param), policy)
		if err != nil {
			return models.RespondWithAppError(c, err)
		}
		if club != nil {
			c.Locals(ClubLocal, club)
		}
		return c.Next()
	}
}

// RequirePostOwner admits admins and the post's poster, attaching the post.
func RequirePostOwner(guard *service.GuardService, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := guard.AuthorizePostAccess(c.UserContext(), middleware.ActorFromCtx(c), c.Params(param))
		if err != nil {
			return models.RespondWithAppError(c, err)
		}
		c.Locals(PostLocal, post)
		return c.Next()
	}
}

// RequireCommentOwner admits admins and the comment's author, attaching the
// comment.
func RequireCommentOwner(guard *service.GuardService, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comment, err := guard.AuthorizeCommentAccess(c.UserContext(), middleware.ActorFromCtx(c), c.Params(param))
		if err != nil {
			return models.RespondWithAppError(c, err)
		}
		c.Locals(CommentLocal, comment)
		return c.Next()
	}
}

// RequireSameUserOrAdmin admits admins and the user named by the route
// parameter.
func RequireSameUserOrAdmin(guard *service.GuardService, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := guard.AuthorizeSameUserOrAdmin(middleware.ActorFromCtx(c), c.Params(param)); err != nil {
			return models.RespondWithAppError(c, err)
		}
		return c.Next()
	}
}
