package games

import (
	"github.com/isaacjstriker/blockfall/internal/auth"
	"github.com/isaacjstriker/blockfall/internal/database"
)

// GameResult represents the outcome of a single game
type GameResult struct {
	GameName string                 `json:"game_name"`
	Score    int                    `json:"score"`
	Duration float64                `json:"duration"`
	Metadata map[string]interface{} `json:"metadata"`
}

// Game interface that all games must implement
type Game interface {
	// GetName returns the display name of the game
	GetName() string

	// GetDescription returns a brief description
	GetDescription() string

	// Play runs the game and returns the result. db may be nil when no
	// database is configured; implementations must treat it as optional.
	Play(db *database.DB, authManager *auth.CLIAuth) *GameResult

	// GetDifficulty returns relative difficulty (1-10)
	GetDifficulty() int

	// IsAvailable checks if game can be played (dependencies, etc.)
	IsAvailable() bool
}

// Registry manages all available games
type Registry struct {
	games []Game
}

// NewRegistry creates an empty game registry
func NewRegistry() *Registry {
	return &Registry{games: make([]Game, 0)}
}

// Register adds a game to the registry
func (r *Registry) Register(game Game) {
	r.games = append(r.games, game)
}

// Available returns all registered games that can currently run
func (r *Registry) Available() []Game {
	available := make([]Game, 0, len(r.games))
	for _, game := range r.games {
		if game.IsAvailable() {
			available = append(available, game)
		}
	}
	return available
}
