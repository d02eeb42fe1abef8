package user

import (
	"net/http"
	"strconv"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete user
// @Description Удаляет пользователя вместе с его постами
// @Tags        users
// @Produce     json
// @Param       id path int true "user id"
// @Success     200 {object} domain.APIEnvelope{response=object}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /users/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "user.delete"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad id", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "user_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", id)
	v1.WriteOKResponse(w, r, map[string]bool{strconv.FormatInt(id, 10): true})
}
