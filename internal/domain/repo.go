package domain

import "context"

// Контракты хранилища. Реализация — Postgres (pgxpool).

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	// SaveUser: id==0 — вставка с выдачей id, иначе полная перезапись строки.
	SaveUser(ctx context.Context, u User) (User, error)
	// UserByID/UserByUsername возвращают nil без ошибки, если пользователя нет.
	UserByID(ctx context.Context, id UserID) (*User, error)
	UserByUsername(ctx context.Context, username string) (*User, error)
	AllUsers(ctx context.Context) ([]User, error)
	UserExists(ctx context.Context, id UserID) (bool, error)
	DeleteUser(ctx context.Context, id UserID) error
}

type PostsRepo interface {
	SavePost(ctx context.Context, p Post) (Post, error)
	// PostByID возвращает пост вместе с владельцем; nil без ошибки, если поста нет.
	PostByID(ctx context.Context, id PostID) (*Post, error)
	AllPosts(ctx context.Context) ([]Post, error)
	// PostsByUsername: посты указанного пользователя, JOIN по username.
	PostsByUsername(ctx context.Context, username string) ([]Post, error)
	PostExists(ctx context.Context, id PostID) (bool, error)
	DeletePost(ctx context.Context, id PostID) error
}
