package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/health"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/post"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/stats"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/status"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/user"
)

func newRouter(hh *health.Handler, uh *user.Handler, ph *post.Handler,
	sh *status.Handler, th *stats.Handler, st mw.Availability, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// status (не гейтится: через него сервис и включают обратно)
	mux.HandleFunc("GET /status", sh.Get)

	// stats (служебная ручка, чтение/сброс счетчика вне гейта)
	mux.HandleFunc("GET /api/stats/requests", th.Requests)
	mux.HandleFunc("POST /api/stats/requests/reset", th.Reset)

	// users
	gated := func(h http.HandlerFunc) http.Handler { return mw.Gate(st, h) }
	mux.Handle("POST /users/create", gated(uh.Create))
	mux.Handle("GET /users", gated(uh.List))
	mux.Handle("GET /users/{id}", gated(uh.GetOne))
	mux.Handle("GET /users/by-username/{username}", gated(uh.GetByUsername))
	mux.Handle("PUT /users/{id}", gated(uh.Update))
	mux.Handle("DELETE /users/{id}", gated(uh.Delete))

	// posts
	mux.Handle("POST /posts/create", gated(ph.Create))
	mux.Handle("POST /posts/bulk", gated(ph.BulkCreate))
	mux.Handle("GET /posts", gated(ph.List))
	mux.Handle("GET /posts/{id}", gated(ph.GetOne))
	mux.Handle("GET /posts/user/{username}", gated(ph.ByUsername))
	mux.Handle("PUT /posts/{id}", gated(ph.Update))
	mux.Handle("DELETE /posts/{id}", gated(ph.Delete))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}
