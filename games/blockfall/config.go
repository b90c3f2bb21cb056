package blockfall

import (
	"log"
	"os"

	lua "github.com/yuin/gopher-lua"
)

const tunablesPath = "games/blockfall/blockfall.lua"

// Tunables holds presentation settings loaded from blockfall.lua. The
// engine's rules are not tunable; only cadence and rendering are.
type Tunables struct {
	TickMillis  int
	ColorMode   string // "auto", "always" or "never"
	ShowPreview bool
}

func defaultTunables() *Tunables {
	return &Tunables{
		TickMillis:  500,
		ColorMode:   "auto",
		ShowPreview: true,
	}
}

// loadTunables reads settings from blockfall.lua, falling back to the
// defaults when the script is missing or does not parse.
func loadTunables(path string) *Tunables {
	defaults := defaultTunables()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("[INFO] %s not found, using default tunables", path)
		return defaults
	}

	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		log.Printf("[INFO] error loading %s: %v. Using default tunables.", path, err)
		return defaults
	}

	// The script returns a table; its settings live under "config".
	root := L.Get(-1)
	tbl, ok := root.(*lua.LTable)
	if !ok {
		log.Printf("[INFO] %s did not return a table, using default tunables", path)
		return defaults
	}
	configTbl, ok := tbl.RawGetString("config").(*lua.LTable)
	if !ok {
		log.Printf("[INFO] %s has no config table, using default tunables", path)
		return defaults
	}

	t := &Tunables{
		TickMillis:  getLuaInt(configTbl, "tick_ms", defaults.TickMillis),
		ColorMode:   getLuaString(configTbl, "color_mode", defaults.ColorMode),
		ShowPreview: getLuaBool(configTbl, "show_preview", defaults.ShowPreview),
	}
	if t.TickMillis < 50 {
		t.TickMillis = 50
	}
	return t
}

// Helper functions to safely get values from a Lua table
func getLuaInt(tbl *lua.LTable, key string, fallback int) int {
	if num, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(num)
	}
	return fallback
}

func getLuaString(tbl *lua.LTable, key string, fallback string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return fallback
}

func getLuaBool(tbl *lua.LTable, key string, fallback bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return fallback
}
