package input

import (
	"context"
	"errors"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/textris/core"
)

// ErrInputClosed is returned once the event source has ended and the queue is drained
var ErrInputClosed = errors.New("input source closed")

// EventSource is a blocking event reader; tcell.Screen satisfies it
// PollEvent returns nil once the source is finished
type EventSource interface {
	PollEvent() tcell.Event
}

// Inputs forwards events from a blocking reader goroutine to the game goroutine
// through an unbounded FIFO, decoding them with a KeyMap on receipt
type Inputs struct {
	keys     *KeyMap
	events   <-chan tcell.Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewInputs starts reading src in the background
func NewInputs(src EventSource, keys *KeyMap) *Inputs {
	in := make(chan tcell.Event)
	out := make(chan tcell.Event)
	i := &Inputs{
		keys:   keys,
		events: out,
		done:   make(chan struct{}),
	}

	core.Go(func() {
		defer close(in)
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in <- ev:
			case <-i.done:
				return
			}
		}
	})
	core.Go(func() { forward(in, out, i.done) })

	return i
}

// forward buffers without bound between in and out, preserving order
func forward(in <-chan tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)

	var queue []tcell.Event
	for in != nil || len(queue) > 0 {
		var send chan<- tcell.Event
		var head tcell.Event
		if len(queue) > 0 {
			send = out
			head = queue[0]
		}

		select {
		case ev, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, ev)
		case send <- head:
			queue[0] = nil
			queue = queue[1:]
		case <-done:
			return
		}
	}
}

func (i *Inputs) Keys() *KeyMap { return i.keys }

// TryRecv consumes at most one queued event without blocking
// ok is false when the queue is empty or the event has no binding
func (i *Inputs) TryRecv() (cmd Command, ok bool, err error) {
	select {
	case ev, open := <-i.events:
		if !open {
			return Command{}, false, ErrInputClosed
		}
		cmd, ok = i.keys.Command(ev)
		return cmd, ok, nil
	default:
		return Command{}, false, nil
	}
}

// Recv blocks until a bound command arrives, ctx ends or the source closes
func (i *Inputs) Recv(ctx context.Context) (Command, error) {
	for {
		select {
		case ev, open := <-i.events:
			if !open {
				return Command{}, ErrInputClosed
			}
			if cmd, ok := i.keys.Command(ev); ok {
				return cmd, nil
			}
		case <-ctx.Done():
			return Command{}, ctx.Err()
		}
	}
}

// Close stops forwarding; pending events are dropped
func (i *Inputs) Close() {
	i.doneOnce.Do(func() { close(i.done) })
}
