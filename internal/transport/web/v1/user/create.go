package user

import (
	"encoding/json"
	"net/http"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create user
// @Description Создает нового пользователя
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body domain.User true "username, email, password"
// @Success     200 {object} domain.APIEnvelope{response=domain.User}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /users/create [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "user.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	var req domain.User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	u, err := h.Users.Create(r.Context(), req)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteOKResponse(w, r, u)
}
