package autosave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFirstRequestIsImmediate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := Start(ctx, time.Hour)
	select {
	case _, ok := <-ch:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("no immediate save request")
	}
}

func TestRequestsRepeat(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := Start(ctx, 10*time.Millisecond)
	for i := 0; i < 3; i++ {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("request %d never arrived", i)
		}
	}
}

func TestRequestsCoalesce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := Start(ctx, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	require.LessOrEqual(t, len(ch), 1)
}

func TestCancelClosesChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := Start(ctx, time.Hour)
	<-ch
	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
