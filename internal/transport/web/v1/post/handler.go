package post

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/service"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/logx"
	"github.com/rize-zxc/Project-Wesker/internal/transport/web/mw"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

type Handler struct {
	Log   *log.Logger
	Posts *service.Posts
	Users *service.Users
}

// owner вытаскивает владельца по ?userId= (общий шаг create/bulk).
func (h *Handler) owner(ctx context.Context, r *http.Request) (*domain.User, error) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	if err != nil {
		return nil, domain.ErrBadParams
	}
	u, err := h.Users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (h *Handler) writePost(w http.ResponseWriter, r *http.Request, op string, p domain.Post) {
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "ok", "post_id", p.ID)
	v1.WriteOKResponse(w, r, p)
}
