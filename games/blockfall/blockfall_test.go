package blockfall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacjstriker/blockfall/internal/engine"
)

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name string
		char rune
		key  keyboard.Key
		want engine.Action
		ok   bool
	}{
		{name: "a moves left", char: 'a', want: engine.Move(-1, 0), ok: true},
		{name: "left arrow moves left", key: keyboard.KeyArrowLeft, want: engine.Move(-1, 0), ok: true},
		{name: "D moves right", char: 'D', want: engine.Move(1, 0), ok: true},
		{name: "s soft-drops as a tick", char: 's', want: engine.Tick(), ok: true},
		{name: "down arrow soft-drops as a tick", key: keyboard.KeyArrowDown, want: engine.Tick(), ok: true},
		{name: "w rotates", char: 'w', want: engine.Rotate(), ok: true},
		{name: "r restarts", char: 'r', want: engine.Restart(), ok: true},
		{name: "unbound key ignored", char: 'x', ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := actionForKey(tt.char, tt.key)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Quitting closes the quit channel, so replaying from the menu has to
// start with fresh channels or the new session would end on its first
// select.
func TestStartSessionAfterQuit(t *testing.T) {
	g := &Game{tunables: defaultTunables()}

	g.startSession()
	close(g.quit) // what readKeys does when the player quits

	g.startSession()
	select {
	case <-g.quit:
		t.Fatal("fresh session observed the previous session's quit")
	default:
	}

	g.actions <- engine.Rotate()
	assert.Equal(t, engine.Rotate(), <-g.actions)
}

func TestSessionMetadataShape(t *testing.T) {
	got := sessionMetadata(7, 42.5)
	assert.Equal(t, map[string]interface{}{
		"rows_cleared": 7,
		"duration":     42.5,
	}, got)
}

func TestLoadTunablesMissingFile(t *testing.T) {
	got := loadTunables(filepath.Join(t.TempDir(), "absent.lua"))
	assert.Equal(t, defaultTunables(), got)
}

func TestLoadTunablesFromScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.lua")
	script := `return {
    config = {
        tick_ms = 250,
        color_mode = "never",
        show_preview = false,
    },
}`
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	got := loadTunables(path)
	assert.Equal(t, 250, got.TickMillis)
	assert.Equal(t, "never", got.ColorMode)
	assert.False(t, got.ShowPreview)
}

func TestLoadTunablesPartialScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.lua")
	script := `return { config = { tick_ms = 10 } }`
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	got := loadTunables(path)
	// clamped to the floor; unset keys keep their defaults
	assert.Equal(t, 50, got.TickMillis)
	assert.Equal(t, "auto", got.ColorMode)
	assert.True(t, got.ShowPreview)
}

func TestLoadTunablesBrokenScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.lua")
	require.NoError(t, os.WriteFile(path, []byte(`return nonsense(((`), 0644))

	got := loadTunables(path)
	assert.Equal(t, defaultTunables(), got)
}
