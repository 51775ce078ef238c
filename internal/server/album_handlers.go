package server

import (
	"waxclub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SearchAlbums proxies an authenticated Discogs master search. Results are
// cached in Redis so repeated searches stay off the upstream API.
func (s *Server) SearchAlbums(c *fiber.Ctx) error {
	title := c.Query("title")
	artist := c.Query("artist")

	if title == "" && artist == "" {
		return models.RespondWithAppError(c,
			models.NewValidationError("At least one of title or artist is required."))
	}

	albums, err := s.catalog.Search(c.UserContext(), title, artist)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"albums": albums})
}
