package middleware

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"golang.org/x/time/rate"

	"tool-permission/utils"
)

// r：每秒产生的 token 数，b：桶容量
var limiter = NewIPRateLimiter(1, 2)

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  *sync.RWMutex
	r   rate.Limit
	b   int
}

type granteeLimit struct {
	GranteeId string `json:"granteeId"`
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		mu:  &sync.RWMutex{},
		r:   r,
		b:   b,
	}

	return i
}

// AddIP creates a new rate limiter and adds it to the ips map,
// using the IP address as the key
func (i *IPRateLimiter) AddIP(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter := rate.NewLimiter(i.r, i.b)

	i.ips[ip] = limiter

	return limiter
}

// GetLimiter returns the rate limiter for the provided IP address if it exists.
// Otherwise calls AddIP to add IP address to the map
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	limiter, exists := i.ips[ip]

	if !exists {
		i.mu.Unlock()
		return i.AddIP(ip)
	}

	i.mu.Unlock()

	return limiter
}

// LimitMiddleware 按 ip+granteeId 限流，防止单个调用方刷签名
func LimitMiddleware(c *gin.Context) {
	var body_ []byte
	if c.Request.Body != nil {
		body_, _ = ioutil.ReadAll(c.Request.Body)
		c.Request.Body = ioutil.NopCloser(bytes.NewBuffer(body_))
	}

	if c.Request.Method == "OPTIONS" {
		c.Next()
		return
	}
	ip := utils.GetClientIP(c.Request)

	var grantee granteeLimit
	if c.ContentType() == "application/json" {
		_ = c.ShouldBindBodyWith(&grantee, binding.JSON)
	}
	if grantee.GranteeId == "" {
		grantee.GranteeId = c.Query("granteeId")
	}
	l := limiter.GetLimiter(ip + grantee.GranteeId)
	if !l.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"result": false,
			"error":  "Too Many Requests",
		})
		return
	}
	c.Request.Body = ioutil.NopCloser(bytes.NewBuffer(body_))
	c.Next()
}
