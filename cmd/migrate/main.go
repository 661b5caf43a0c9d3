package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"bookshelf/internal/config"
	"bookshelf/internal/platform/database"

	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	dbCfg := config.LoadDatabase()

	if *command == "create" {
		if *name == "" {
			log.Fatal("Name is required for 'create' command")
		}
		if err := goose.Create(nil, dbCfg.MigrationsDir, *name, "sql"); err != nil {
			log.Fatalf("Failed to create migration: %v", err)
		}
		fmt.Printf("Migration created: %s\n", *name)
		return
	}

	ctx := context.Background()
	pool, err := database.Open(ctx, dbCfg.DSN, dbCfg.Timeout)
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", config.RedactDSN(dbCfg.DSN), err)
	}
	defer pool.Close()

	provider, closeDB, err := database.NewMigrator(pool, dbCfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to load migrations from %s: %v", dbCfg.MigrationsDir, err)
	}
	defer closeDB()

	if err := runCommand(ctx, provider, *command); err != nil {
		log.Fatal(err)
	}
}

func runCommand(ctx context.Context, provider *goose.Provider, command string) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		fmt.Printf("Migrations applied successfully (%d)\n", len(results))
	case "down":
		if _, err := provider.Down(ctx); err != nil {
			return fmt.Errorf("failed to rollback migration: %w", err)
		}
		fmt.Println("Migration rolled back successfully")
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		for _, s := range statuses {
			fmt.Printf("%-8s %05d %s\n", s.State, s.Source.Version, s.Source.Path)
		}
	default:
		return fmt.Errorf("unknown command: %s. Use: up, down, status, create", command)
	}
	return nil
}
