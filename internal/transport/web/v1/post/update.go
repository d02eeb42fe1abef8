package post

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
// @Summary     Update post
// @Description Частичное обновление title/text
// @Tags        posts
// @Accept      json
// @Produce     json
// @Param       id path int true "post id"
// @Param       request body domain.PostUpdate true "поля для изменения"
// @Success     200 {object} domain.APIEnvelope{response=domain.Post}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /posts/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "post.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad id", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	var upd domain.PostUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	p, err := h.Posts.Update(r.Context(), id, upd)
	if err != nil {
		logx.Error(h.Log, reqID, op, "update failed", err, "post_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	h.writePost(w, r, op, p)
}
