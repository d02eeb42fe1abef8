package post

import (
	"net/http"
	"strconv"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

// List godoc
// @Summary     List posts
// @Description Возвращает все посты (без кеша)
// @Tags        posts
// @Produce     json
// @Success     200 {object} domain.APIEnvelope{response=[]domain.Post}
// @Failure     503 {object} domain.APIEnvelope
// @Router      /posts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "post.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	posts, err := h.Posts.All(r.Context())
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(posts))
	v1.WriteOKResponse(w, r, posts)
}

// GetOne godoc
// @Summary     Get post by id
// @Description Возвращает пост с владельцем
// @Tags        posts
// @Produce     json
// @Param       id path int true "post id"
// @Success     200 {object} domain.APIEnvelope{response=domain.Post}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /posts/{id} [get]
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	const op = "post.get"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad id", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	p, err := h.Posts.ByID(r.Context(), id)
	if err != nil {
		logx.Error(h.Log, reqID, op, "get failed", err, "post_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	if p == nil {
		logx.Info(h.Log, reqID, op, "not found", "post_id", id)
		v1.WriteDomainError(w, r, domain.ErrNotFound)
		return
	}

	h.writePost(w, r, op, *p)
}

// ByUsername godoc
// @Summary     Posts by username
// @Description Возвращает посты пользователя (кешируется по username)
// @Tags        posts
// @Produce     json
// @Param       username path string true "username"
// @Success     200 {object} domain.APIEnvelope{response=[]domain.Post}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /posts/user/{username} [get]
func (h *Handler) ByUsername(w http.ResponseWriter, r *http.Request) {
	const op = "post.by_username"
	reqID := mw.RequestIDFromCtx(r.Context())

	username := r.PathValue("username")
	posts, err := h.Posts.ByUsername(r.Context(), username)
	if err != nil {
		logx.Error(h.Log, reqID, op, "fetch failed", err, "username", username)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "username", username, "count", len(posts))
	v1.WriteOKResponse(w, r, posts)
}
