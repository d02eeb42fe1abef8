package user

import (
	"net/http"
	"strconv"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

// List godoc
// @Summary     List users
// @Description Возвращает список всех пользователей
// @Tags        users
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{response=[]domain.User}
// @Failure     503 {object} domain.APIEnvelope
// @Router      /users [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "user.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	users, err := h.Users.All(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(users))
	v1.WriteOKResponse(w, r, users)
}

// GetOne godoc
// @Summary     Get user by id
// @Description Возвращает пользователя по идентификатору
// @Tags        users
// @Produce     json
// @Param       id path int true "user id"
// @Success     200 {object} domain.APIEnvelope{response=domain.User}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /users/{id} [get]
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	const op = "user.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad id", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	u, err := h.Users.ByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "get failed", err, "user_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	if u == nil {
		logx.Info(h.Log, reqID, op, "not found", "user_id", id)
		v1.WriteDomainError(w, r, domain.ErrNotFound)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOKResponse(w, r, u)
}

// GetByUsername godoc
// @Summary     Get user by username
// @Description Возвращает пользователя по username
// @Tags        users
// @Produce     json
// @Param       username path string true "username"
// @Success     200 {object} domain.APIEnvelope{response=domain.User}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /users/by-username/{username} [get]
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	const op = "user.get_by_username"
	reqID := mw.RequestIDFromCtx(r.Context())

	username := r.PathValue("username")
	u, err := h.Users.ByUsername(r.Context(), username)
	if err != nil {
		logx.Error(h.Log, reqID, op, "get failed", err, "username", username)
		v1.WriteDomainError(w, r, err)
		return
	}
	if u == nil {
		logx.Info(h.Log, reqID, op, "not found", "username", username)
		v1.WriteDomainError(w, r, domain.ErrNotFound)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOKResponse(w, r, u)
}
