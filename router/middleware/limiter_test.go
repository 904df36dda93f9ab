package middleware

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestLimiter(t *testing.T) {
	limiter := rate.NewLimiter(1, 2)
	allowed := 0
	for i := 0; i < 10; i++ {
		if limiter.Allow() {
			allowed++
		}
		if i%5 == 4 {
			time.Sleep(time.Second * 1)
		}
	}
	// 桶容量 2，每秒补 1 个
	if allowed < 2 || allowed > 5 {
		t.Errorf("allowed = %d, want between 2 and 5", allowed)
	}
}

func TestIPRateLimiterReuse(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	a := l.GetLimiter("127.0.0.1grantee-1")
	b := l.GetLimiter("127.0.0.1grantee-1")
	if a != b {
		t.Error("same key should get the same limiter")
	}
	c := l.GetLimiter("127.0.0.1grantee-2")
	if a == c {
		t.Error("different keys should get different limiters")
	}
}
