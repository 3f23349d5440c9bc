package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/textris/core"
)

// chanSource replays events and reports the end once the channel is closed
type chanSource chan tcell.Event

func (c chanSource) PollEvent() tcell.Event {
	ev, ok := <-c
	if !ok {
		return nil
	}
	return ev
}

func TestInputsPreservesOrder(t *testing.T) {
	const n = 500
	src := make(chanSource, n)
	want := make([]Command, 0, n)
	for i := range n {
		if i%2 == 0 {
			src <- runeKey('h')
			want = append(want, Move(core.Left))
		} else {
			src <- runeKey('l')
			want = append(want, Move(core.Right))
		}
	}
	close(src)

	in := NewInputs(src, NewKeyMap(LayoutVim))
	defer in.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make([]Command, 0, n)
	for range n {
		cmd, err := in.Recv(ctx)
		require.NoError(t, err)
		got = append(got, cmd)
	}
	assert.Equal(t, want, got)

	_, err := in.Recv(ctx)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestInputsRecvSkipsUnbound(t *testing.T) {
	src := make(chanSource, 3)
	src <- runeKey('k')
	src <- runeKey('w')
	src <- runeKey('q')

	in := NewInputs(src, NewKeyMap(LayoutVim))
	defer in.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd, err := in.Recv(ctx)
	require.NoError(t, err)
	assert.Equal(t, CmdQuit, cmd)
}

func TestInputsTryRecvEmpty(t *testing.T) {
	src := make(chanSource)
	in := NewInputs(src, NewKeyMap(LayoutNormal))
	defer in.Close()

	_, ok, err := in.TryRecv()
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestInputsTryRecvEventually(t *testing.T) {
	src := make(chanSource, 1)
	src <- specialKey(tcell.KeyDown)

	in := NewInputs(src, NewKeyMap(LayoutNormal))
	defer in.Close()

	assert.Eventually(t, func() bool {
		cmd, ok, err := in.TryRecv()
		return err == nil && ok && cmd == Move(core.Down)
	}, 2*time.Second, 5*time.Millisecond)
}

func TestInputsRecvHonorsContext(t *testing.T) {
	in := NewInputs(make(chanSource), NewKeyMap(LayoutNormal))
	defer in.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := in.Recv(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInputsClose(t *testing.T) {
	in := NewInputs(make(chanSource), NewKeyMap(LayoutNormal))
	in.Close()
	in.Close()

	assert.Eventually(t, func() bool {
		_, _, err := in.TryRecv()
		return err == ErrInputClosed
	}, 2*time.Second, 5*time.Millisecond)
}
