package engine

// ActionKind tags the four things that can happen to a game.
type ActionKind int

const (
	ActionTick ActionKind = iota
	ActionMove
	ActionRotate
	ActionRestart
)

// Action is a tagged variant over {Tick, Move{dx,dy}, Rotate, Restart}.
// DX and DY are meaningful only for ActionMove.
type Action struct {
	Kind   ActionKind
	DX, DY int
}

func Tick() Action           { return Action{Kind: ActionTick} }
func Move(dx, dy int) Action { return Action{Kind: ActionMove, DX: dx, DY: dy} }
func Rotate() Action         { return Action{Kind: ActionRotate} }
func Restart() Action        { return Action{Kind: ActionRestart} }

// Reduce applies one action to a state and returns the next state.
// Illegal placements are rejected by returning the input state
// unchanged; nothing here can fail. The seed feeds piece selection on
// the transitions that spawn (tick merge, restart) and is ignored by
// the rest, which keeps the whole reducer a pure function of its
// arguments.
func Reduce(s State, a Action, seed int64) State {
	switch a.Kind {
	case ActionTick:
		return tick(s, seed)
	case ActionMove:
		return move(s, a.DX, a.DY)
	case ActionRotate:
		return rotate(s)
	case ActionRestart:
		return restart(s, seed)
	}
	return s
}

// tick is the gravity step. Soft drops arrive here too: the input
// layer maps the drop key to the same action.
func tick(s State, seed int64) State {
	if s.Ended {
		return s
	}
	if s.Score > s.Highscore {
		s.Highscore = s.Score
	}

	dropped := s.Current
	dropped.Y++
	cells := dropped.Cells()
	if !hitsFloor(cells) && !hitsStack(s.Board, cells) {
		s.Current = dropped
		return s
	}

	// The piece rests where it was before this tick. Test the end of
	// game against that position, not the blocked one below it.
	resting := s.Current.Cells()
	if atCeiling(resting) {
		s.Ended = true
		return s
	}

	s.Board = s.Board.Merge(resting, s.Current.Color())
	s.Current = s.Next
	s.Next = Spawn(seed)
	return clearRows(s)
}

func move(s State, dx, dy int) State {
	if s.Ended {
		return s
	}
	shifted := s.Current
	shifted.X += dx
	shifted.Y += dy
	cells := shifted.Cells()
	// Horizontal motion never checks the floor; the bound inputs only
	// ever move with dy = 0.
	if hitsStack(s.Board, cells) || hitsWall(cells) {
		return s
	}
	s.Current = shifted
	return s
}

func rotate(s State) State {
	if s.Ended {
		return s
	}
	turned := s.Current
	turned.Rotation = (turned.Rotation + 1) % turned.Kind.RotationStates()
	cells := turned.Cells()
	// No wall kicks: a blocked rotation is simply rejected.
	if hitsStack(s.Board, cells) || hitsWall(cells) {
		return s
	}
	s.Current = turned
	return s
}

// restart builds a fresh playing state, carrying over only the
// highscore. A correct New never yields an ended state, but the
// contract defends against it anyway rather than hand one back.
func restart(s State, seed int64) State {
	fresh := New(seed)
	fresh.Highscore = s.Highscore
	if fresh.Ended {
		return restart(s, seed+1)
	}
	return fresh
}

// clearRows removes every full row in one pass and scores one point
// per row. Simultaneous clears earn no bonus multiplier.
func clearRows(s State) State {
	board, cleared := s.Board.ClearFull()
	s.Board = board
	s.Score += cleared
	return s
}
