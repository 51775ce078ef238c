// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"strings"
	"time"

	"waxclub/internal/config"
	"waxclub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var cfg *config.Config

// AuthCookieName is the session cookie holding the JWT.
const AuthCookieName = "token"

// actorLocal is the Fiber locals key the authenticated actor is stored under.
const actorLocal = "actor"

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// ActorFromCtx returns the authenticated actor for this request, nil when
// the request is anonymous.
func ActorFromCtx(c *fiber.Ctx) *models.Actor {
	if actor, ok := c.Locals(actorLocal).(*models.Actor); ok {
		return actor
	}
	return nil
}

// GenerateToken signs a session JWT carrying the username and admin flag.
func GenerateToken(username string, admin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"admin":    admin,
		"iat":      now.Unix(),
		"exp":      now.Add(cfg.AuthCookieTTL).Unix(),
		"jti":      uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// tokenFromRequest reads the session token from the auth cookie, falling
// back to an Authorization bearer header for non-browser clients.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(AuthCookieName); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthenticateToken derives the request actor from a verified session token.
// Requests without a token continue anonymously; routes that need an actor
// enforce it with RequireAuth or a guard.
func AuthenticateToken(c *fiber.Ctx) error {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return c.Next()
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("Invalid or expired token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("Invalid token claims"))
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthenticatedError("Invalid token structure - missing username"))
	}
	admin, _ := claims["admin"].(bool)

	c.Locals(actorLocal, &models.Actor{Username: username, Admin: admin})
	return c.Next()
}

// RequireAuth rejects anonymous requests.
func RequireAuth(c *fiber.Ctx) error {
	if ActorFromCtx(c) == nil {
		return models.RespondWithAppError(c,
			models.NewUnauthenticatedError("Must be logged in to access this route"))
	}
	return c.Next()
}

// RequireAdmin rejects requests whose actor is not an admin.
func RequireAdmin(c *fiber.Ctx) error {
	actor := ActorFromCtx(c)
	if actor == nil {
		return models.RespondWithAppError(c,
			models.NewUnauthenticatedError("Must be logged in to access this route"))
	}
	if !actor.Admin {
		return models.RespondWithAppError(c,
			models.NewUnauthorizedError("Unauthorized: Must be admin to access this route"))
	}
	return c.Next()
}
