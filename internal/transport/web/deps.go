package web

import "github.com/rize-zxc/Project-Wesker/internal/service"

type Services struct {
	Users   *service.Users
	Posts   *service.Posts
	Status  *service.Status
	Counter *service.Counter
}
