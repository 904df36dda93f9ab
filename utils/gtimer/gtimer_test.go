package gtimer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestSetInterval(t *testing.T) {
	var count int32
	ctx, cancel := context.WithCancel(context.Background())
	SetInterval(time.Millisecond*50, ctx, func() {
		atomic.AddInt32(&count, 1)
	})
	time.Sleep(time.Millisecond * 280)
	cancel()
	got := atomic.LoadInt32(&count)
	if got < 3 {
		t.Errorf("job ran %d times, want >= 3", got)
	}
	time.Sleep(time.Millisecond * 100)
	after := atomic.LoadInt32(&count)
	time.Sleep(time.Millisecond * 150)
	if atomic.LoadInt32(&count) != after {
		t.Error("job should stop after cancel")
	}
}
