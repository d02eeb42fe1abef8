package post

import (
	"encoding/json"
	"net/http"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create post
// @Description Создает пост от имени пользователя userId
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       userId query int true "owner id"
// @Param       request body domain.Post true "title, text"
// @Success     200 {object} domain.APIEnvelope{response=domain.Post}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /posts/create [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "post.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	u, err := h.owner(r.Context(), r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "owner lookup failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	var req domain.Post
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	p, err := h.Posts.Create(r.Context(), req, u)
	if err != nil {
		logx.Error(h.Log, reqID, op, "create failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	h.writePost(w, r, op, p)
}

// BulkCreate godoc
// @Summary     Bulk create posts
// @Description Создает набор постов от имени пользователя userId
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       userId query int true "owner id"
// @Param       request body []domain.Post true "посты (title, text)"
// @Success     200 {object} domain.APIEnvelope{response=[]domain.Post}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /posts/bulk [post]
func (h *Handler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	const op = "post.bulk_create"
	reqID := mw.RequestIDFromCtx(r.Context())

	u, err := h.owner(r.Context(), r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "owner lookup failed", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	var req []domain.Post
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	posts, err := h.Posts.BulkCreate(r.Context(), req, u)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bulk create failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "count", len(posts), "user_id", u.ID)
	v1.WriteOKResponse(w, r, posts)
}
