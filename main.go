package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/isaacjstriker/blockfall/games"
	"github.com/isaacjstriker/blockfall/games/blockfall"
	"github.com/isaacjstriker/blockfall/internal/auth"
	"github.com/isaacjstriker/blockfall/internal/config"
	"github.com/isaacjstriker/blockfall/internal/database"
	"github.com/isaacjstriker/blockfall/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The database is optional: without one everything still runs, the
	// leaderboard is just unavailable and scores stay in-session.
	var db *database.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("[INFO] Could not connect to database, continuing without it: %v", err)
		} else {
			defer db.Close()
			if err := db.CreateTables(); err != nil {
				log.Fatalf("failed to create tables: %v", err)
			}
			if cfg.Debug {
				if err := db.CreateSampleData(); err != nil {
					log.Printf("[INFO] Could not create sample data: %v", err)
				}
			}
		}
	} else {
		log.Println("[INFO] No DATABASE_URL set, running in guest mode")
	}

	authManager := auth.NewCLIAuth(db)

	registry := games.NewRegistry()
	registry.Register(blockfall.New())

	for {
		menuItems := []ui.MenuItem{
			{Label: "Play Blockfall", Value: "play"},
			{Label: "Leaderboard", Value: "leaderboard"},
			{Label: "Account", Value: "account"},
			{Label: "Quit", Value: "quit"},
		}

		menu := ui.NewMenu(cfg.AppName, menuItems)
		switch menu.Show() {
		case "play":
			playGame(registry, db, authManager)
		case "leaderboard":
			showLeaderboard(db, cfg.LeaderboardLimit)
		case "account":
			if db == nil {
				fmt.Println("\nAccounts need a configured database. Set DATABASE_URL to enable them.")
				pressEnter()
				continue
			}
			authManager.ShowAuthMenu()
		case "quit", "exit", "":
			fmt.Println("Thanks for playing!")
			return
		}
	}
}

func playGame(registry *games.Registry, db *database.DB, authManager *auth.CLIAuth) {
	available := registry.Available()
	if len(available) == 0 {
		fmt.Println("No games available!")
		pressEnter()
		return
	}

	game := available[0]
	result := game.Play(db, authManager)
	if result != nil && result.Score >= 0 {
		fmt.Printf("\n%s finished with score %d\n", result.GameName, result.Score)
	}
	pressEnter()
}

func showLeaderboard(db *database.DB, limit int) {
	if db == nil {
		fmt.Println("\nThe leaderboard needs a configured database. Set DATABASE_URL to enable it.")
		pressEnter()
		return
	}

	entries, err := db.GetLeaderboard("blockfall", limit)
	if err != nil {
		fmt.Printf("Could not load leaderboard: %v\n", err)
		pressEnter()
		return
	}

	fmt.Println("\nBLOCKFALL LEADERBOARD")
	fmt.Println(strings.Repeat("=", 50))
	if len(entries) == 0 {
		fmt.Println("No scores yet. Be the first!")
	}
	for i, entry := range entries {
		fmt.Printf("%2d. %-20s best %4d  avg %6.1f  (%d games)\n",
			i+1, entry.Username, entry.BestScore, entry.AvgScore, entry.GamesPlayed)
	}
	fmt.Println(strings.Repeat("=", 50))
	pressEnter()
}

func pressEnter() {
	fmt.Println("Press Enter to continue...")
	fmt.Scanln()
}
