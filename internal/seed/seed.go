// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"waxclub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options config
type Options struct {
	NumUsers    int
	NumClubs    int
	NumPosts    int
	ShouldClean bool
}

var clubNames = []string{
	"Vinyl Vanguard", "Deep Cuts", "B-Side Society", "Wax Poets", "Needle Drop",
	"The Crate Diggers", "Liner Notes", "Heavy Rotation", "First Pressing",
	"Lo-Fi Lounge", "The 33⅓ Club", "Record Store Dogs", "Analog Hearts",
	"Spindle & Groove", "Dust & Grooves", "The Gatefold", "Mono Mondays",
}

var genres = []string{
	"Rock", "Jazz", "Electronic", "Hip Hop", "Funk / Soul", "Folk, World, & Country",
	"Classical", "Reggae", "Blues", "Pop", "Latin", "Stage & Screen",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users, %d clubs, %d posts...", opts.NumUsers, opts.NumClubs, opts.NumPosts)
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	clubs, err := createClubs(db, users, opts.NumClubs)
	if err != nil {
		return fmt.Errorf("failed to create clubs: %w", err)
	}
	log.Printf("✓ %d clubs created", len(clubs))

	if err := createMemberships(db, users, clubs); err != nil {
		return fmt.Errorf("failed to create memberships: %w", err)
	}

	albums, err := createAlbums(db, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create albums: %w", err)
	}
	log.Printf("✓ %d albums cached", len(albums))

	posts, err := createPosts(db, users, clubs, albums, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createEngagement(db, users, posts); err != nil {
		return fmt.Errorf("failed to create comments and votes: %w", err)
	}

	if err := createInvitations(db, users, clubs); err != nil {
		return fmt.Errorf("failed to create invitations: %w", err)
	}

	log.Println("Seeding complete. All users have the password: password123")
	return nil
}

func clearData(db *gorm.DB) error {
	tables := []string{"votes", "comments", "posts", "invitations", "users_clubs",
		"albums_genres", "albums", "clubs", "users"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count+1)

	admin := models.User{
		Username:      "admin",
		Email:         "admin@waxclub.dev",
		Password:      string(hashed),
		Admin:         true,
		ProfileImgURL: "https://i.pravatar.cc/150?u=admin",
	}
	if err := db.FirstOrCreate(&admin, models.User{Username: "admin"}).Error; err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 0; i < count; i++ {
		user := models.User{
			Username:      fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 99)),
			Email:         gofakeit.Email(),
			Password:      string(hashed),
			ProfileImgURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if len(user.Username) > 30 {
			user.Username = user.Username[:30]
		}
		if err := db.Create(&user).Error; err != nil {
			// Random usernames collide occasionally; skip and move on.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createClubs(db *gorm.DB, users []models.User, count int) ([]models.Club, error) {
	if count > len(clubNames) {
		count = len(clubNames)
	}
	clubs := make([]models.Club, 0, count)
	for i := 0; i < count; i++ {
		founder := users[rand.Intn(len(users))]
		club := models.Club{
			Name:         clubNames[i],
			Description:  gofakeit.Sentence(12),
			Founder:      founder.Username,
			IsPublic:     rand.Intn(3) > 0,
			Founded:      gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()),
			BannerImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/1200/300", gofakeit.UUID()),
		}
		if err := db.Create(&club).Error; err != nil {
			return nil, err
		}
		// Founder joins their own club immediately.
		membership := models.Membership{Username: founder.Username, ClubID: club.ID}
		if err := db.Create(&membership).Error; err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	return clubs, nil
}

func createMemberships(db *gorm.DB, users []models.User, clubs []models.Club) error {
	for _, user := range users {
		for _, club := range clubs {
			if club.Founder == user.Username || rand.Intn(4) != 0 {
				continue
			}
			membership := models.Membership{Username: user.Username, ClubID: club.ID}
			if err := db.Create(&membership).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func createAlbums(db *gorm.DB, count int) ([]models.Album, error) {
	albums := make([]models.Album, 0, count)
	for i := 0; i < count; i++ {
		album := models.Album{
			DiscogsID:   100000 + i,
			Year:        gofakeit.Number(1955, 2025),
			Artist:      gofakeit.Name(),
			Title:       gofakeit.HipsterSentence(3),
			CoverImgURL: fmt.Sprintf("https://picsum.photos/seed/%s/500/500", gofakeit.UUID()),
		}
		if err := db.Create(&album).Error; err != nil {
			return nil, err
		}
		for _, genre := range pickGenres() {
			ag := models.AlbumGenre{DiscogsID: album.DiscogsID, Genre: genre}
			if err := db.Create(&ag).Error; err != nil {
				return nil, err
			}
		}
		albums = append(albums, album)
	}
	return albums, nil
}

func pickGenres() []string {
	n := 1 + rand.Intn(2)
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		g := genres[rand.Intn(len(genres))]
		if !seen[g] {
			seen[g] = true
			picked = append(picked, g)
		}
	}
	return picked
}

func createPosts(db *gorm.DB, users []models.User, clubs []models.Club, albums []models.Album, count int) ([]models.Post, error) {
	if len(clubs) == 0 || len(albums) == 0 {
		return nil, nil
	}
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		club := clubs[rand.Intn(len(clubs))]
		post := models.Post{
			ClubID:    club.ID,
			DiscogsID: albums[rand.Intn(len(albums))].DiscogsID,
			PostedBy:  users[rand.Intn(len(users))].Username,
			PostedAt:  gofakeit.DateRange(club.Founded, time.Now()),
			Content:   gofakeit.Paragraph(1, 2, 8, "\n"),
			RecTracks: fmt.Sprintf("A%d, B%d", 1+rand.Intn(6), 1+rand.Intn(6)),
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, users []models.User, posts []models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			if rand.Intn(5) != 0 {
				continue
			}
			vote := models.Vote{PostID: post.ID, Username: user.Username, Liked: rand.Intn(4) > 0}
			if err := db.Create(&vote).Error; err != nil {
				return err
			}
			if rand.Intn(3) == 0 {
				comment := models.Comment{
					Username: user.Username,
					Body:     gofakeit.Sentence(10),
					PostID:   post.ID,
					PostedAt: gofakeit.DateRange(post.PostedAt, time.Now()),
				}
				if err := db.Create(&comment).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func createInvitations(db *gorm.DB, users []models.User, clubs []models.Club) error {
	for _, club := range clubs {
		for _, user := range users {
			if rand.Intn(10) != 0 {
				continue
			}
			var existing models.Membership
			err := db.Where("username = ? AND club_id = ?", user.Username, club.ID).
				First(&existing).Error
			if err == nil {
				continue
			}
			invitation := models.Invitation{
				ClubID:   club.ID,
				Username: user.Username,
				SentFrom: club.Founder,
			}
			if err := db.Create(&invitation).Error; err != nil {
				// Already invited; fine.
				continue
			}
		}
	}
	return nil
}
