package main

import (
	"context"
	"flag"
	"log"

	"notetaking-web/internal/bootstrap"
	"notetaking-web/internal/config"
	"notetaking-web/internal/pkg/logger"
	"notetaking-web/internal/seed"
	"notetaking-web/pkg/database"
)

func main() {
	email := flag.String("email", "demo@example.com", "demo account email")
	password := flag.String("password", "demo1234", "demo account password")
	notes := flag.Int("notes", 12, "notes to create")
	trashed := flag.Int("trashed", 3, "how many of them go to the trash")
	flag.Parse()

	cfg := config.Load()
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.NewGormDB(database.GormConfig{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.Connection,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg, logger.NewNopLogger())
	defer container.Close()

	seeder := seed.NewSeeder(container.AuthService, container.NoteService, 0)
	user, err := seeder.DemoUser(context.Background(), seed.Options{
		Email:    *email,
		Password: *password,
		Notes:    *notes,
		Trashed:  *trashed,
	})
	if err != nil {
		log.Fatalf("Error: seeding failed: %v", err)
	}

	log.Printf("✅ Seeded %d notes for %s (user %d)", *notes, user.Email, user.Id)
}
