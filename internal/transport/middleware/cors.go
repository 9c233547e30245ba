package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jungguji/algo-rewind/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing so a
// browser front end served elsewhere can call the API. Preflight OPTIONS
// requests are answered directly. A blank allowed_origins disables CORS and
// returns nil, which Chain skips.
func CORS(cfg config.CORSConfig) Middleware {
	if strings.TrimSpace(cfg.AllowedOrigins) == "" {
		return nil
	}
	origins := strings.Split(cfg.AllowedOrigins, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && isAllowedOrigin(origin, origins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
