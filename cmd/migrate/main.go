// Command migrate applies or rolls back the embedded schema migrations.
//
//	migrate [up|down|status]
package main

import (
	"context"
	"log"
	"os"

	"github.com/cmlabs-hris/hris-admin-go/internal/config"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	switch command {
	case "up":
		err = database.Migrate(ctx, db)
	case "down":
		err = database.MigrateDown(ctx, db)
	case "status":
		err = database.MigrationStatus(ctx, db)
	default:
		log.Fatalf("unknown command %q, expected up, down or status", command)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("migrate %s: done", command)
}
