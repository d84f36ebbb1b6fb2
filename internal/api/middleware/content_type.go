package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adaptiveui/tracker/internal/api/models"
)

// ContentTypeJSON defaults the response Content-Type to application/json.
// Handlers that write something else (the plain-text liveness banner) set
// their own header before writing.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}
		next.ServeHTTP(w, r)
	})
}

// RequireJSON rejects POST bodies declared as anything other than JSON
// with a 415 envelope. Requests without a Content-Type header pass
// through; device SDKs do not always send one.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			contentType := r.Header.Get("Content-Type")
			if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{
					Success: false,
					Error:   "Content-Type must be application/json",
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
