package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

// Update godoc
// @Summary     Update user
// @Description Частичное обновление: отсутствующие поля не меняются
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path int true "user id"
// @Param       request body domain.UserUpdate true "поля для изменения"
// @Success     200 {object} domain.APIEnvelope{response=domain.User}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /users/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "user.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad id", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	var upd domain.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	u, err := h.Users.Update(r.Context(), id, upd)
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "user_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOKResponse(w, r, u)
}
