package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/dtroode/chessacademy-server/internal/api/http/handler"
)

// RateLimit allows each client IP a burst of requests refilled evenly over window.
type RateLimit struct {
	mu             sync.Mutex
	clients        map[string]*client
	limit          rate.Limit
	burst          int
	idle           time.Duration
	skipSuccessful bool
	now            func() time.Time
	lastScan       time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimitOption func(*RateLimit)

// SkipSuccessful charges a client only for responses with status >= 400.
func SkipSuccessful() RateLimitOption {
	return func(l *RateLimit) {
		l.skipSuccessful = true
	}
}

// NewRateLimit allows requests per window for every client IP.
func NewRateLimit(requests int, window time.Duration, opts ...RateLimitOption) *RateLimit {
	if requests <= 0 {
		requests = 1
	}
	l := &RateLimit{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		idle:    window,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RateLimit) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if wait, ok := l.admit(ip); !ok {
			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
			handler.WriteError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
			return
		}

		if !l.skipSuccessful {
			next.ServeHTTP(w, r)
			return
		}

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		if ww.Status() >= http.StatusBadRequest {
			l.charge(ip)
		}
	})
}

// admit reports whether ip may proceed, and otherwise how long until it may.
// Without SkipSuccessful the request is charged here.
func (l *RateLimit) admit(ip string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = now

	if l.skipSuccessful {
		if c.limiter.TokensAt(now) >= 1 {
			return 0, true
		}
	} else if c.limiter.AllowN(now, 1) {
		return 0, true
	}

	missing := 1 - c.limiter.TokensAt(now)
	return time.Duration(missing / float64(l.limit) * float64(time.Second)), false
}

func (l *RateLimit) charge(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.clients[ip]; ok {
		c.limiter.AllowN(l.now(), 1)
	}
}

// evict drops clients idle for longer than a full window, at most once per window.
func (l *RateLimit) evict(now time.Time) {
	if now.Sub(l.lastScan) < l.idle {
		return
	}
	l.lastScan = now
	for ip, c := range l.clients {
		if now.Sub(c.lastSeen) > l.idle {
			delete(l.clients, ip)
		}
	}
}

func retryAfterSeconds(wait time.Duration) int {
	secs := int(math.Ceil(wait.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
