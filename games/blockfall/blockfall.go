package blockfall

import (
	"fmt"
	"time"

	"github.com/eiannone/keyboard"

	"github.com/isaacjstriker/blockfall/games"
	"github.com/isaacjstriker/blockfall/internal/auth"
	"github.com/isaacjstriker/blockfall/internal/database"
	"github.com/isaacjstriker/blockfall/internal/engine"
)

// Game hosts terminal sessions of Blockfall. All game rules live in
// the engine package; this type only translates keys and ticks into
// actions, folds them into the running state one at a time, and draws
// the result.
type Game struct {
	tunables *Tunables
	actions  chan engine.Action
	quit     chan struct{}
}

// New creates the Blockfall game with tunables from blockfall.lua. The
// action and quit channels are per-session and allocated in Play.
func New() *Game {
	return &Game{
		tunables: loadTunables(tunablesPath),
	}
}

// startSession makes fresh channels for one play-through. Quitting
// closes g.quit, so a replay from the menu must never reuse it: a
// receive on the closed channel would end the new session immediately.
func (g *Game) startSession() {
	g.actions = make(chan engine.Action, 16)
	g.quit = make(chan struct{})
}

func (g *Game) GetName() string {
	return "Blockfall"
}

func (g *Game) GetDescription() string {
	return "Stack the falling pieces and clear full rows. Don't reach the top!"
}

func (g *Game) GetDifficulty() int {
	return 3
}

func (g *Game) IsAvailable() bool {
	return true
}

// Play runs the game loop and returns the session result.
func (g *Game) Play(db *database.DB, authManager *auth.CLIAuth) *games.GameResult {
	if err := keyboard.Open(); err != nil {
		fmt.Printf("Failed to initialize keyboard: %v\n", err)
		return &games.GameResult{GameName: g.GetName(), Score: -1}
	}
	defer keyboard.Close()

	g.startSession()
	go g.readKeys()

	fmt.Println("--- BLOCKFALL ---")
	fmt.Println("Controls: A/D=Move, S=Drop, W=Rotate, R=Restart, Q=Quit")
	time.Sleep(2 * time.Second)

	startTime := time.Now()
	state := engine.New(time.Now().UnixNano())
	g.render(state)

	ticker := time.NewTicker(time.Duration(g.tunables.TickMillis) * time.Millisecond)
	defer ticker.Stop()

	// One action at a time, in arrival order: the ticker and the key
	// reader each emit actions, and this loop is the only place the
	// state advances.
	running := true
	for running {
		select {
		case <-ticker.C:
			state = engine.Reduce(state, engine.Tick(), time.Now().UnixNano())
			g.render(state)
		case action := <-g.actions:
			state = engine.Reduce(state, action, time.Now().UnixNano())
			g.render(state)
		case <-g.quit:
			running = false
		}
	}

	duration := time.Since(startTime).Seconds()
	best := state.Highscore
	if state.Score > best {
		best = state.Score
	}

	fmt.Print("\033[2J\033[H")
	fmt.Println("GAME OVER!")
	fmt.Printf("Best score this session: %d\n", best)

	metadata := sessionMetadata(best, duration)
	g.saveScore(db, authManager, best, metadata)

	return &games.GameResult{
		GameName: g.GetName(),
		Score:    best,
		Duration: duration,
		Metadata: metadata,
	}
}

// sessionMetadata is the one metadata shape a session produces, shared
// by the returned result and the leaderboard row.
func sessionMetadata(score int, duration float64) map[string]interface{} {
	return map[string]interface{}{
		"rows_cleared": score,
		"duration":     duration,
	}
}

// readKeys runs in its own goroutine, translating raw keys into the
// four engine actions. The soft-drop key maps to Tick: a manual drop
// and a gravity step are the same transition.
func (g *Game) readKeys() {
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			select {
			case <-g.quit:
				return
			default:
			}
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if char == 'q' || char == 'Q' || key == keyboard.KeyEsc {
			close(g.quit)
			return
		}

		action, ok := actionForKey(char, key)
		if !ok {
			continue
		}
		select {
		case g.actions <- action:
		case <-g.quit:
			return
		}
	}
}

// actionForKey maps a key event to an engine action. It reports false
// for keys outside the binding set.
func actionForKey(char rune, key keyboard.Key) (engine.Action, bool) {
	switch {
	case char == 'a' || char == 'A' || key == keyboard.KeyArrowLeft:
		return engine.Move(-1, 0), true
	case char == 'd' || char == 'D' || key == keyboard.KeyArrowRight:
		return engine.Move(1, 0), true
	case char == 's' || char == 'S' || key == keyboard.KeyArrowDown:
		return engine.Tick(), true
	case char == 'w' || char == 'W' || key == keyboard.KeyArrowUp:
		return engine.Rotate(), true
	case char == 'r' || char == 'R':
		return engine.Restart(), true
	}
	return engine.Action{}, false
}

// saveScore records the session on the leaderboard when a database is
// configured and the player is logged in.
func (g *Game) saveScore(db *database.DB, authManager *auth.CLIAuth, score int, metadata map[string]interface{}) {
	if db == nil || authManager == nil || !authManager.GetSession().IsLoggedIn() {
		fmt.Println("Tip: Login to save your high scores!")
		return
	}
	session := authManager.GetSession().GetCurrentSession()
	if session == nil {
		return
	}

	if err := db.SaveGameScore(session.UserID, "blockfall", score, metadata); err != nil {
		fmt.Printf("Warning: Could not save score: %v\n", err)
		return
	}
	fmt.Println("Score saved to your profile!")

	if stats, err := db.GetUserStats(session.UserID, "blockfall"); err == nil {
		fmt.Printf("Your best score: %d\n", stats.BestScore)
		fmt.Printf("Games played: %d\n", stats.GamesPlayed)
	}
}
