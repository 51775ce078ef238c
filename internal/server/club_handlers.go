package server

import (
	"log/slog"
	"time"

	"waxclub/internal/middleware"
	"waxclub/internal/models"
	"waxclub/internal/repository"
	"waxclub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createClubRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Founder      string `json:"founder"`
	IsPublic     bool   `json:"is_public"`
	BannerImgURL string `json:"banner_img_url"`
}

type updateClubRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	BannerImgURL string `json:"banner_img_url"`
}

type createPostRequest struct {
	DiscogsID int    `json:"discogs_id"`
	Content   string `json:"content"`
	RecTracks string `json:"rec_tracks"`
}

// GetClubs lists clubs, optionally filtered by visibility and name fragment.
func (s *Server) GetClubs(c *fiber.Ctx) error {
	filters := repository.ClubFilters{Name: c.Query("name")}
	if raw := c.Query("isPublic"); raw != "" {
		isPublic := raw == "true"
		filters.IsPublic = &isPublic
	}

	clubs, err := s.clubs.List(c.UserContext(), filters)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"clubs": clubs})
}

// CreateClub creates a club and adds the founder as its first member.
// The founder defaults to the requesting user; admins may create clubs on
// behalf of someone else.
func (s *Server) CreateClub(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req createClubRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	founder := req.Founder
	if founder == "" || !actor.Admin {
		founder = actor.Username
	}

	club, err := s.clubs.Create(c.UserContext(), service.CreateClubInput{
		Name:         req.Name,
		Description:  req.Description,
		Founder:      founder,
		IsPublic:     req.IsPublic,
		BannerImgURL: req.BannerImgURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "club created",
		slog.String("name", club.Name), slog.Uint64("club_id", uint64(club.ID)))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"club": club})
}

// GetClub returns a club with its member list. The access guard has already
// resolved the club.
func (s *Server) GetClub(c *fiber.Ctx) error {
	club := ClubFromCtx(c)

	full, err := s.clubs.GetWithMembers(c.UserContext(), club.ID)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"club": full})
}

// UpdateClub changes a club's name, description, or banner.
func (s *Server) UpdateClub(c *fiber.Ctx) error {
	club := ClubFromCtx(c)

	var req updateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	message, err := s.clubs.Update(c.UserContext(), club, service.UpdateClubInput{
		Name:         req.Name,
		Description:  req.Description,
		BannerImgURL: req.BannerImgURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{"message": message, "club": club})
}

// DeleteClub removes a club along with its posts, memberships, and open
// invitations.
func (s *Server) DeleteClub(c *fiber.Ctx) error {
	club := ClubFromCtx(c)

	message, err := s.clubs.Delete(c.UserContext(), club)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "club deleted",
		slog.String("name", club.Name), slog.Uint64("club_id", uint64(club.ID)))

	return c.JSON(fiber.Map{"message": message})
}

// CreatePost adds an album post to a club, fetching the album's catalog
// metadata on first sight of its release ID.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	club := ClubFromCtx(c)
	actor := middleware.ActorFromCtx(c)
	ctx := c.UserContext()

	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.DiscogsID <= 0 {
		return models.RespondWithAppError(c, models.NewValidationError("Discogs ID must be a positive integer."))
	}

	album, err := s.catalog.EnsureAlbum(ctx, req.DiscogsID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	post := &models.Post{
		ClubID:    club.ID,
		DiscogsID: req.DiscogsID,
		PostedBy:  actor.Username,
		PostedAt:  time.Now().UTC(),
		Content:   req.Content,
		RecTracks: req.RecTracks,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post, "album": album})
}
