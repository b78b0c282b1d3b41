package timer

import (
	"context"
	"log"
	"testing"
	"time"
)

func TestTimeoutCtxDone(t *testing.T) {
	done := make(chan struct{})
	go func() {
		time.Sleep(5 * time.Millisecond)
		close(done)
	}()
	if TimeoutCtx(context.Background(), done) {
		t.Error(`reported timeout although done fired`)
	}
}

func TestTimeoutCtxExpired(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	monika := make(chan struct{})
	defer close(monika)
	if !TimeoutCtx(ctx, monika) {
		t.Error(`no timeout reported`)
	}
	log.Println(`no stuck!`)
}
