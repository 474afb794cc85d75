package main

import (
	"context"
	"flag"
	"log"
	"storyrun-service/internal/adapters/store"
	"storyrun-service/internal/config"
	"storyrun-service/internal/platform/db"
	"strings"
)

// dbtool prepares the Postgres run store ahead of a deployment.
func main() {
	reset := flag.Bool("reset", false, "delete the stored run after initializing the schema")
	flag.Parse()

	config.LoadDotEnv()

	databaseURL := config.Get("DATABASE_URL", "")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	runStore := store.NewPostgresRunStore(conn)

	log.Println("Initializing database schema...")
	if err := runStore.InitSchema(ctx); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if *reset {
		log.Println("Resetting run store...")
		if err := runStore.Reset(ctx); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		log.Println("Run store is empty.")
	}
}
