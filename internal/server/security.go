package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/LootTally_Go/internal/logger"
)

// AuthMiddleware gates every non-public route behind the shared API key the
// ingest host is configured with. Comparison is constant time.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.RecordFailedAuth(ip)

				log := logger.FromContext(r.Context())
				log.Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies. Ingest lines are at most a
// few KB, so anything near the cap is hostile or broken.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// AbuseMonitor tracks per-IP failed auth attempts and request volume over a
// sliding reset window. The ingest host normally sends from one address, so
// any fan-out of failing or high-rate IPs is worth an alert.
type AbuseMonitor struct {
	mu             sync.Mutex
	failedAuthByIP map[string]int
	requestsByIP   map[string]int
	windowStart    time.Time
}

func NewAbuseMonitor() *AbuseMonitor {
	return &AbuseMonitor{
		failedAuthByIP: make(map[string]int),
		requestsByIP:   make(map[string]int),
		windowStart:    time.Now(),
	}
}

// RecordFailedAuth counts a failed authentication attempt and alerts once the
// per-IP threshold is crossed.
func (m *AbuseMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.failedAuthByIP[ip]++

	if m.failedAuthByIP[ip] >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", m.failedAuthByIP[ip])
	}
}

// AllowRequest counts a request against the per-IP budget and reports
// whether it may proceed. Blocked requests are logged sampled, not each.
func (m *AbuseMonitor) AllowRequest(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	m.requestsByIP[ip]++

	if m.requestsByIP[ip] > RateLimitMaxRequests {
		if m.requestsByIP[ip]%RateLimitLogSampleEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", m.requestsByIP[ip])
		}
		return false
	}
	return true
}

// rollWindow discards all counters once the window elapses.
// Caller holds the mutex.
func (m *AbuseMonitor) rollWindow() {
	if time.Since(m.windowStart) > RateLimitWindow {
		m.requestsByIP = make(map[string]int)
		m.failedAuthByIP = make(map[string]int)
		m.windowStart = time.Now()
	}
}

// SecurityLoggingMiddleware enforces the per-IP request budget before the
// request reaches the handlers.
func SecurityLoggingMiddleware(trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.AllowRequest(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the request's client address. X-Forwarded-For is only
// honored when the direct peer is a configured trusted proxy, and then the
// rightmost entry wins: that is the hop the trusted proxy itself saw.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware stamps the standard hardening headers on every
// response.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
