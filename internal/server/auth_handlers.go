package server

import (
	"fmt"
	"log/slog"
	"time"

	"waxclub/internal/middleware"
	"waxclub/internal/models"
	"waxclub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	ProfileImgURL string `json:"profile_img_url"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// setAuthCookie attaches a fresh session cookie to the response.
func (s *Server) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(s.config.AuthCookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.IsProduction(),
	})
}

// Register creates a new user account and logs it in.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateImageURL(req.ProfileImgURL); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}

	ctx := c.UserContext()

	existing, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if existing != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError(fmt.Sprintf("Username %s is already taken.", req.Username)))
	}
	existing, err = s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if existing != nil {
		return models.RespondWithAppError(c,
			models.NewValidationError(fmt.Sprintf("Email %s is already in use.", req.Email)))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Username:      req.Username,
		Email:         req.Email,
		Password:      string(hashed),
		ProfileImgURL: req.ProfileImgURL,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}

	token, err := middleware.GenerateToken(user.Username, user.Admin)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	s.setAuthCookie(c, token)

	middleware.Logger.InfoContext(ctx, "user registered", slog.String("username", user.Username))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

// Login authenticates a user and sets the session cookie.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	ctx := c.UserContext()

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return models.RespondWithAppError(c, models.NewUnauthenticatedError("Invalid username/password"))
	}

	token, err := middleware.GenerateToken(user.Username, user.Admin)
	if err != nil {
		return models.RespondWithAppError(c, models.NewInternalError(err))
	}
	s.setAuthCookie(c, token)

	middleware.Logger.InfoContext(ctx, "user logged in", slog.String("username", user.Username))

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Successfully logged in user %s.", user.Username),
	})
}

// CheckSession confirms the session cookie is still valid. RequireAuth has
// already rejected anonymous requests by the time this runs.
func (s *Server) CheckSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "User is logged in."})
}

// Logout clears the session cookie.
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   s.config.IsProduction(),
	})
	return c.JSON(fiber.Map{"message": "Logged out."})
}
