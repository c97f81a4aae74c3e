package webd

import (
	"encoding/json"
	"net"
	"net/http"
	"os"

	ghandlers "github.com/gorilla/handlers"
	"github.com/jellydator/ttlcache/v3"

	"github.com/rotblauer/catwalk/params"
)

func loggingMiddleware(next http.Handler) http.Handler {
	return ghandlers.CombinedLoggingHandler(os.Stdout, next)
}

func permissiveCorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Add("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
		next.ServeHTTP(w, r)
	})
}

// rateLimitMiddleware 429s a client that has already spent its generate
// budget inside the TTL window. Hits refresh the window (touch-on-hit),
// matching a "last seen" reset policy.
func (s *WebDaemon) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		count := 0
		if item := s.limiter.Get(ip); item != nil {
			count = item.Value()
		}
		if count >= params.WebRateLimitCount {
			s.logger.Warn("Rate limited", "client", ip, "count", count)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
			return
		}
		s.limiter.Set(ip, count+1, ttlcache.DefaultTTL)

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
