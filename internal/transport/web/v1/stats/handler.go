package stats

import (
	"log"
	"net/http"

	"github.com/rize-zxc/Project-Wesker/internal/service"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

type Handler struct {
	Log     *log.Logger
	Counter *service.Counter
}

// Requests godoc
// @Summary     Request count
// @Description Текущее значение сквозного счетчика запросов
// @Tags        stats
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Router      /api/stats/requests [get]
func (h *Handler) Requests(w http.ResponseWriter, r *http.Request) {
	const op = "stats.requests"
	reqID := mw.RequestIDFromCtx(r.Context())

	total := h.Counter.Count()

	logx.Info(h.Log, reqID, op, "ok", "total", total)
	v1.WriteOKResponse(w, r, map[string]int64{"totalRequests": total})
}

// Reset godoc
// @Summary     Reset request count
// @Description Сбрасывает счетчик запросов в ноль
// @Tags        stats
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Router      /api/stats/requests/reset [post]
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	const op = "stats.reset"
	reqID := mw.RequestIDFromCtx(r.Context())

	h.Counter.Reset()

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteOKResponse(w, r, map[string]int64{"totalRequests": h.Counter.Count()})
}
