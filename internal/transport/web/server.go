package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rize-zxc/Project-Wesker/internal/config"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/health"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/post"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/stats"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/status"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/v1/user"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, svc Services, db health.Pinger) *Server {
	healthLog := log.New(logger.Writer(), logger.Prefix()+"[health] ", logger.Flags())
	userLog := log.New(logger.Writer(), logger.Prefix()+"[user] ", logger.Flags())
	postLog := log.New(logger.Writer(), logger.Prefix()+"[post] ", logger.Flags())
	statusLog := log.New(logger.Writer(), logger.Prefix()+"[status] ", logger.Flags())
	statsLog := log.New(logger.Writer(), logger.Prefix()+"[stats] ", logger.Flags())

	healthHandler := &health.Handler{Log: healthLog, DB: db}
	userHandler := &user.Handler{Log: userLog, Users: svc.Users}
	postHandler := &post.Handler{Log: postLog, Posts: svc.Posts, Users: svc.Users}
	statusHandler := &status.Handler{Log: statusLog, Status: svc.Status}
	statsHandler := &stats.Handler{Log: statsLog, Counter: svc.Counter}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           newRouter(healthHandler, userHandler, postHandler, statusHandler, statsHandler, svc.Status, logger),
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
