package mw

import (
	"encoding/json"
	"net/http"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/service"
)

type Availability interface {
	IsServerAvailable() bool
}

// Gate закрывает ручку, когда сервис переведен в unavailable.
// Сама проверка считается запросом (инкремент внутри IsServerAvailable).
func Gate(st Availability, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !st.IsServerAvailable() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(
				domain.Fail(domain.ErrCodeUnavailable, service.MsgRetryLater))
			return
		}
		next.ServeHTTP(w, r)
	})
}
