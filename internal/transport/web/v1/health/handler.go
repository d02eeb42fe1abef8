package health

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

type Pinger interface {
	Ping(context.Context) error
}

type Handler struct {
	Log *log.Logger
	DB  Pinger
}

// Liveness godoc
// @Summary      Liveness probe
// @Description  Проверка, жив ли сервис (не зависит от БД)
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.APIEnvelope{data=string}
// @Router       /v1/healthz [get]
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	const op = "health.liveness"
	reqID := mw.RequestIDFromCtx(r.Context())

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteOKData(w, r, "ok")
}

// Readiness godoc
// @Summary      Readiness probe
// @Description  Проверка готовности сервиса (включая пинг БД)
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.APIEnvelope{data=string}
// @Failure      500  {object}  domain.APIEnvelope
// @Router       /v1/readyz [get]
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	const op = "health.readiness"
	reqID := mw.RequestIDFromCtx(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		logx.Error(h.Log, reqID, op, "db ping failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ready")
	v1.WriteOKData(w, r, "ready")
}
