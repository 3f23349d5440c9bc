package core

import "fmt"

// Elapsed accumulates whole seconds of play time
type Elapsed struct {
	seconds uint64
}

// Add advances the counter by secs
func (e *Elapsed) Add(secs uint64) {
	e.seconds += secs
}

// Seconds returns the accumulated total
func (e Elapsed) Seconds() uint64 {
	return e.seconds
}

// String formats as HH:MM:SS, hours are not wrapped
func (e Elapsed) String() string {
	h := e.seconds / 3600
	m := (e.seconds % 3600) / 60
	s := e.seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
