package rate_limiter

import (
	"net/http"
	"strconv"

	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/pkg/logger"
)

// Middleware отбрасывает запросы сверх лимита с 429. Маршруты из exempt
// (шаблоны mux) лимитом не ограничиваются: вебхук провайдера нельзя терять.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter, exempt ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(exempt))
	for _, route := range exempt {
		skip[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := metrics.RouteTemplate(r)
			if _, ok := skip[route]; ok {
				next.ServeHTTP(w, r)
				return
			}

			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rateLimiterQPS))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
			if err != nil {
				log.Error("failed to write rate limit response",
					logger.Err(err),
					logger.NewField("path", r.URL.Path),
				)
			}
		})
	}
}
