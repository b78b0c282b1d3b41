package timer

import (
	"context"
)

// TimeoutCtx blocks until done is closed or ctx ends. true means ctx won.
func TimeoutCtx(ctx context.Context, done <-chan struct{}) bool {
	select {
	case <-done:
		return false
	case <-ctx.Done():
		select {
		case <-done:
			return false
		default:
		}
		return true
	}
}
