package status

import (
	"log"
	"net/http"

	"github.com/rize-zxc/Project-Wesker/internal/service"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

type Handler struct {
	Log    *log.Logger
	Status *service.Status
}

// Get godoc
// @Summary     Service status
// @Description Снимок доступности и счетчика запросов; ?status=available|unavailable переключает флаг
// @Tags        status
// @Produce     json
// @Param       status query string false "available | unavailable"
// @Success     200 {object} domain.APIEnvelope{response=domain.StatusInfo}
// @Router      /status [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "status.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	info := h.Status.UpdateAndGetStatus(r.URL.Query().Get("status"))

	logx.Info(h.Log, reqID, op, "ok", "status", info.Status, "total", info.TotalRequests)
	v1.WriteOKResponse(w, r, info)
}
