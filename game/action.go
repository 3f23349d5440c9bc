package game

// Action is the outcome chosen in a modal or by the play loop
type Action uint8

const (
	ActionOk    Action = iota // Resume the current play
	ActionReset               // Abandon the play and start a new one
	ActionRetry               // New play after game over
	ActionQuit                // Leave the game
)

var actionNames = [...]string{"Ok", "Reset", "Retry", "Quit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}
