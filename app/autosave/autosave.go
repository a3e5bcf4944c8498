// Package autosave emits periodic save requests for the UI loop to act on.
package autosave

import (
	"context"
	"time"
)

// Start returns a channel that receives a request immediately and then once
// per interval until ctx is cancelled, when the channel is closed. A request
// the receiver has not taken yet absorbs later ones, so a slow or blocked UI
// never sees a backlog.
func Start(ctx context.Context, interval time.Duration) <-chan struct{} {
	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case ch <- struct{}{}:
			default:
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return ch
}
