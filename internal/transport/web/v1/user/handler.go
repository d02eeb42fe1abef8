package user

import (
	"log"

	"github.com/rize-zxc/Project-Wesker/internal/service"
)

type Handler struct {
	Log   *log.Logger
	Users *service.Users
}
