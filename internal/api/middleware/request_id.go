package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/StayFinder-BookingService/pkg/reqctx"
)

// HeaderRequestID заголовок с ID запроса
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID берет ID запроса из заголовка или генерирует новый.
// ID кладется в контекст и возвращается в ответе.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(reqctx.WithRequestID(r.Context(), id)))
	})
}
