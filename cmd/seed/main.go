// Command main runs the database seeder for waxclub.
package main

import (
	"flag"
	"log"

	"waxclub/internal/config"
	"waxclub/internal/database"
	"waxclub/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 40, "Number of users to create")
	numClubs := flag.Int("clubs", 8, "Number of clubs to create")
	numPosts := flag.Int("posts", 120, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumClubs:    *numClubs,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
