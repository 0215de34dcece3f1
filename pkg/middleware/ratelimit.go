package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/seller-reports-api/pkg/apiErrors"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	RequestsPerSecond float64
	Burst             int
	EntryTTL          time.Duration
	// TrustedProxies lists the IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
}

// ClientRateLimiter keeps one token bucket per client IP.
type ClientRateLimiter struct {
	mu          sync.Mutex
	limiters    map[string]*rateLimiterEntry
	rate        rate.Limit
	burst       int
	entryTTL    time.Duration
	lastCleanup time.Time
	now         func() time.Time
	trusted     []*net.IPNet
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewClientRateLimiter(cfg RateLimiterConfig) (*ClientRateLimiter, error) {
	if cfg.EntryTTL <= 0 {
		cfg.EntryTTL = 10 * time.Minute
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	trusted, err := parseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	return &ClientRateLimiter{
		limiters: make(map[string]*rateLimiterEntry),
		rate:     rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		entryTTL: cfg.EntryTTL,
		now:      time.Now,
		trusted:  trusted,
	}, nil
}

func parseTrustedProxies(values []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if !strings.Contains(value, "/") {
			ip := net.ParseIP(value)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", value)
			}
			bits := 8 * net.IPv4len
			if ip.To4() == nil {
				bits = 8 * net.IPv6len
			}
			value = fmt.Sprintf("%s/%d", value, bits)
		}

		_, ipNet, err := net.ParseCIDR(value)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", value, err)
		}
		nets = append(nets, ipNet)
	}
	return nets, nil
}

func (rl *ClientRateLimiter) limiter(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) > rl.entryTTL {
		for key, entry := range rl.limiters {
			if now.Sub(entry.lastSeen) > rl.entryTTL {
				delete(rl.limiters, key)
			}
		}
		rl.lastCleanup = now
	}

	entry, ok := rl.limiters[client]
	if !ok {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[client] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

func (rl *ClientRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := rl.limiter(rl.clientIP(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			if !limiter.Allow() {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", "1")
				apiErrors.WriteError(w, apiErrors.ErrRateLimited, "rate limit exceeded, try again later", nil)
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *ClientRateLimiter) isTrusted(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, ipNet := range rl.trusted {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}

// clientIP keys requests on the peer address. X-Forwarded-For is only read
// when the peer is a trusted proxy, walking the chain from the right and
// returning the first hop that is not itself trusted.
func (rl *ClientRateLimiter) clientIP(r *http.Request) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	if !rl.isTrusted(net.ParseIP(remote)) {
		return remote
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return remote
	}

	hops := strings.Split(forwarded, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		ip := net.ParseIP(hop)
		if ip == nil {
			break
		}
		if !rl.isTrusted(ip) {
			return hop
		}
	}

	return remote
}
