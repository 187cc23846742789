package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/arina-sh/contact-api/internal/store"
)

// Bootstraps the contact_messages schema. Idempotent: safe to run on
// every deploy. With --list it prints the stored messages instead
// (administrative read path; not exposed over HTTP).
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	listOnly := false
	for _, a := range os.Args[1:] {
		if a == "--list" {
			listOnly = true
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	log.Println("Connected to database")

	messages := store.New(db)

	if listOnly {
		all := messages.ListAll(ctx)
		for _, m := range all {
			fmt.Printf("#%d  %s  %s <%s>\n    %s\n", m.ID, m.CreatedAt.Format(time.RFC3339), m.Name, m.Email, m.Message)
		}
		fmt.Printf("Total: %d messages\n", len(all))
		return
	}

	if err := messages.InitSchema(ctx); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("Schema is up to date")
}
