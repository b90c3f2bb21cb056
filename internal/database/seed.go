package database

import (
	"encoding/json"
	"fmt"
	"log"
)

// CreateSampleData seeds a handful of players and blockfall scores so
// a fresh local database has a leaderboard to look at. It does nothing
// when any user already exists.
func (db *DB) CreateSampleData() error {
	var userCount int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("failed to check existing users: %w", err)
	}
	if userCount > 0 {
		return nil
	}

	log.Println("[INFO] Seeding sample leaderboard data")

	players := []struct {
		username string
		email    string
		scores   []int
	}{
		{"rowrunner", "rowrunner@example.com", []int{12, 31, 18}},
		{"stacker", "stacker@example.com", []int{44, 9}},
		{"gridlock", "gridlock@example.com", []int{27}},
		{"freefall", "freefall@example.com", []int{5, 16, 22, 8}},
	}

	for _, p := range players {
		// sample accounts are not loginable; the hash is a placeholder
		user, err := db.CreateUser(p.username, p.email, "sample-data-no-login")
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", p.username, err)
		}
		for _, score := range p.scores {
			metadata, _ := json.Marshal(map[string]interface{}{"rows_cleared": score})
			query := db.rebind(`
				INSERT INTO game_scores (user_id, game_type, score, metadata)
				VALUES (?, ?, ?, ?)
			`)
			if _, err := db.conn.Exec(query, user.ID, "blockfall", score, string(metadata)); err != nil {
				return fmt.Errorf("failed to seed score for %s: %w", p.username, err)
			}
		}
	}

	return nil
}
