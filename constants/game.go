package constants

import "time"

// Field Dimensions
const (
	// FieldWidth is the default number of columns
	FieldWidth = 16

	// FieldHeight is the default number of rows
	FieldHeight = 16

	// MinFieldSize and MaxFieldSize bound configurable dimensions
	MinFieldSize = 4
	MaxFieldSize = 64
)

// Game Loop Timing Constants
const (
	// FrameInterval is the outer loop period
	FrameInterval = 50 * time.Millisecond

	// TickFrames is how many frames make one elapsed second
	TickFrames = int(time.Second / FrameInterval)

	// UpdateFrames is how many frames pass between gravity steps
	UpdateFrames = TickFrames / 2

	// TitleInterval is the delay between title letters during the intro
	TitleInterval = 32 * time.Millisecond

	// TitleHold is how long the full title stays before play starts
	TitleHold = 800 * time.Millisecond
)
