// Package server contains the HTTP handlers and route wiring for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"waxclub/internal/cache"
	"waxclub/internal/config"
	"waxclub/internal/database"
	"waxclub/internal/middleware"
	"waxclub/internal/repository"
	"waxclub/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	userRepo       repository.UserRepository
	clubRepo       repository.ClubRepository
	membershipRepo repository.MembershipRepository
	invitationRepo repository.InvitationRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	voteRepo       repository.VoteRepository
	albumRepo      repository.AlbumRepository
	guard          *service.GuardService
	membership     *service.MembershipService
	invitations    *service.InvitationService
	votes          *service.VoteService
	clubs          *service.ClubService
	catalog        *service.CatalogService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	middleware.InitMiddleware(cfg)

	return NewServerWithDB(cfg, db, redisClient), nil
}

// NewServerWithDB wires a server around an existing database handle.
// Tests use this with an in-memory store.
func NewServerWithDB(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	albumRepo := repository.NewAlbumRepository(db)

	membershipService := service.NewMembershipService(userRepo, clubRepo, membershipRepo, invitationRepo)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		userRepo:       userRepo,
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
		invitationRepo: invitationRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		voteRepo:       voteRepo,
		albumRepo:      albumRepo,
		guard:          service.NewGuardService(clubRepo, membershipRepo, postRepo, commentRepo),
		membership:     membershipService,
		invitations:    service.NewInvitationService(userRepo, clubRepo, membershipRepo, invitationRepo),
		votes:          service.NewVoteService(voteRepo),
		clubs:          service.NewClubService(userRepo, clubRepo, membershipRepo, invitationRepo, postRepo, membershipService),
		catalog:        service.NewCatalogService(albumRepo, cfg.DiscogsToken, cfg.DiscogsUserAgent),
	}
}

// SetupMiddleware configures the global middleware stack.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(requestid.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.AllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	prom := fiberprometheus.New("waxclub")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	app.Use(middleware.AuthenticateToken)
	app.Use(middleware.ContextMiddleware())
	app.Use(middleware.StructuredLogger())
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 5, time.Minute, "auth_register"), s.Register)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, time.Minute, "auth_login"), s.Login)
	auth.Post("/check", middleware.RequireAuth, s.CheckSession)
	auth.Post("/logout", s.Logout)

	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:username", s.GetUser)
	users.Patch("/:username", RequireSameUserOrAdmin(s.guard, "username"), s.UpdateUser)
	users.Delete("/:username", RequireSameUserOrAdmin(s.guard, "username"), s.DeleteUser)
	users.Post("/:username/join-club/:clubId",
		RequireSameUserOrAdmin(s.guard, "username"), s.JoinClub)

	clubs := api.Group("/clubs")
	clubs.Get("/", s.GetClubs)
	clubs.Post("/", middleware.RequireAuth, s.CreateClub)
	clubs.Get("/:clubId",
		RequireClubAccess(s.guard, "clubId", service.ClubPolicy{AllowPublic: true}),
		s.GetClub)
	clubs.Patch("/:clubId",
		RequireClubAccess(s.guard, "clubId", service.ClubPolicy{FounderOnly: true}),
		s.UpdateClub)
	clubs.Delete("/:clubId",
		RequireClubAccess(s.guard, "clubId", service.ClubPolicy{FounderOnly: true}),
		s.DeleteClub)
	clubs.Post("/:clubId/new-post",
		RequireClubAccess(s.guard, "clubId", service.ClubPolicy{}),
		s.CreatePost)

	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/recent/:username", s.GetRecentPosts)
	posts.Get("/:postId", s.GetPost)
	posts.Post("/:postId/vote/:type", middleware.RequireAuth, s.VoteOnPost)
	posts.Post("/:postId/new-comment", middleware.RequireAuth, s.CreateComment)
	posts.Patch("/:postId", RequirePostOwner(s.guard, "postId"), s.UpdatePost)
	posts.Delete("/:postId", RequirePostOwner(s.guard, "postId"), s.DeletePost)

	comments := api.Group("/comments")
	comments.Patch("/:commentId", RequireCommentOwner(s.guard, "commentId"), s.UpdateComment)
	comments.Delete("/:commentId", RequireCommentOwner(s.guard, "commentId"), s.DeleteComment)

	invitations := api.Group("/invitations", middleware.RequireAuth)
	invitations.Post("/", s.CreateInvitation)
	invitations.Get("/", s.GetMyInvitations)
	invitations.Post("/:clubId/accept", s.AcceptInvitation)
	invitations.Delete("/:clubId", s.DeclineInvitation)

	albums := api.Group("/albums")
	albums.Get("/search",
		middleware.RequireAuth,
		middleware.RateLimit(s.redis, 30, time.Minute, "album_search"),
		s.SearchAlbums)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(_ context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
