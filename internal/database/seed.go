package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user and a small starter theme catalog. No-op if users exist.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	// Hash the default admin password.
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role)
		VALUES ($1, $2, $3, $4)
	`, "admin@dailyspin.local", string(hash), "Admin", "admin")
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	// Starter themes so the admin calendar isn't empty on first run.
	themes := []struct{ title, description string }{
		{"Song stuck in your head", "Whatever's been looping all day"},
		{"First concert memory", "A track from the first show you saw live"},
		{"Guilty pleasure", "The one you skip when friends are around"},
	}
	for _, th := range themes {
		if _, err := db.Exec(
			`INSERT INTO themes (title, description) VALUES ($1, $2)`,
			th.title, th.description,
		); err != nil {
			return fmt.Errorf("seed insert theme: %w", err)
		}
	}

	slog.Info("database seeded with default admin user and starter themes",
		"email", "admin@dailyspin.local",
		"password", "admin",
	)

	return nil
}
