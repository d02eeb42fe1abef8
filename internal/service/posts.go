package service

import (
	"context"
	"fmt"
	"log"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
)

// Posts — CRUD постов. Владеет производным ключом user_posts_<username>:
// любая запись, меняющая ленту пользователя, обязана его снести.
type Posts struct {
	log     *log.Logger
	repo    domain.PostsRepo
	cache   domain.Cache
	counter *Counter
}

func NewPosts(logger *log.Logger, repo domain.PostsRepo, cache domain.Cache, counter *Counter) *Posts {
	return &Posts{log: logger, repo: repo, cache: cache, counter: counter}
}

func (s *Posts) Create(ctx context.Context, p domain.Post, user *domain.User) (domain.Post, error) {
	s.counter.Increment()

	if user == nil {
		return domain.Post{}, fmt.Errorf("%w: user cannot be nil", domain.ErrBadParams)
	}
	if p.Title == "" {
		return domain.Post{}, fmt.Errorf("%w: post title cannot be empty", domain.ErrBadParams)
	}
	if p.Text == "" {
		return domain.Post{}, fmt.Errorf("%w: post text cannot be empty", domain.ErrBadParams)
	}

	p.ID = 0
	p.User = user
	created, err := s.repo.SavePost(ctx, p)
	if err != nil {
		s.log.Printf("create post failed: %v", err)
		return domain.Post{}, fmt.Errorf("%w: failed to create post", domain.ErrUnexpected)
	}

	s.cache.Remove(domain.CacheKeyUserPosts(user.Username))
	s.log.Printf("post created: id=%d user=%s", created.ID, user.Username)
	return created, nil
}

// All всегда ходит в БД: полный список постов не кешируется.
func (s *Posts) All(ctx context.Context) ([]domain.Post, error) {
	s.counter.Increment()

	posts, err := s.repo.AllPosts(ctx)
	if err != nil {
		s.log.Printf("fetch posts failed: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch posts", domain.ErrUnexpected)
	}
	return posts, nil
}

func (s *Posts) ByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	s.counter.Increment()

	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid post id", domain.ErrBadParams)
	}

	key := domain.CacheKeyPost(id)
	if v, ok := s.cache.Get(key); ok {
		if p, ok := v.(domain.Post); ok {
			return &p, nil
		}
	}

	p, err := s.repo.PostByID(ctx, id)
	if err != nil {
		s.log.Printf("fetch post id=%d failed: %v", id, err)
		return nil, fmt.Errorf("%w: failed to fetch post", domain.ErrUnexpected)
	}
	if p != nil {
		s.cache.Put(key, *p)
	}
	return p, nil
}

func (s *Posts) Update(ctx context.Context, id domain.PostID, upd domain.PostUpdate) (domain.Post, error) {
	s.counter.Increment()

	if id <= 0 {
		return domain.Post{}, fmt.Errorf("%w: invalid post id", domain.ErrBadParams)
	}

	p, err := s.repo.PostByID(ctx, id)
	if err != nil {
		s.log.Printf("update post id=%d: fetch failed: %v", id, err)
		return domain.Post{}, fmt.Errorf("%w: failed to update post", domain.ErrUnexpected)
	}
	if p == nil {
		return domain.Post{}, fmt.Errorf("%w: post with id %d", domain.ErrNotFound, id)
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Text != nil {
		p.Text = *upd.Text
	}

	updated, err := s.repo.SavePost(ctx, *p)
	if err != nil {
		s.log.Printf("update post id=%d failed: %v", id, err)
		return domain.Post{}, fmt.Errorf("%w: failed to update post", domain.ErrUnexpected)
	}

	s.cache.Put(domain.CacheKeyPost(id), updated)
	if p.User != nil {
		s.cache.Remove(domain.CacheKeyUserPosts(p.User.Username))
	}
	s.log.Printf("post updated: id=%d", id)
	return updated, nil
}

func (s *Posts) Delete(ctx context.Context, id domain.PostID) error {
	s.counter.Increment()

	if id <= 0 {
		return fmt.Errorf("%w: invalid post id", domain.ErrBadParams)
	}

	p, err := s.repo.PostByID(ctx, id)
	if err != nil {
		s.log.Printf("delete post id=%d: fetch failed: %v", id, err)
		return fmt.Errorf("%w: failed to delete post", domain.ErrUnexpected)
	}
	if p == nil {
		return fmt.Errorf("%w: post with id %d", domain.ErrNotFound, id)
	}

	if err := s.repo.DeletePost(ctx, id); err != nil {
		s.log.Printf("delete post id=%d failed: %v", id, err)
		return fmt.Errorf("%w: failed to delete post", domain.ErrUnexpected)
	}

	s.cache.Remove(domain.CacheKeyPost(id))
	if p.User != nil {
		s.cache.Remove(domain.CacheKeyUserPosts(p.User.Username))
	}
	s.log.Printf("post deleted: id=%d", id)
	return nil
}

// BulkCreate сперва валидирует весь батч, затем сохраняет по одному.
// Транзакций между сущностями нет: сбой БД посреди батча оставляет уже
// записанные посты на месте, это логируется и отдается как unexpected.
func (s *Posts) BulkCreate(ctx context.Context, posts []domain.Post, user *domain.User) ([]domain.Post, error) {
	s.counter.Increment()

	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: posts list cannot be empty", domain.ErrBadParams)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user cannot be nil", domain.ErrBadParams)
	}
	for i := range posts {
		if posts[i].Title == "" {
			return nil, fmt.Errorf("%w: post title cannot be empty", domain.ErrBadParams)
		}
		if posts[i].Text == "" {
			return nil, fmt.Errorf("%w: post text cannot be empty", domain.ErrBadParams)
		}
	}

	created := make([]domain.Post, 0, len(posts))
	for i := range posts {
		p := posts[i]
		p.ID = 0
		p.User = user
		out, err := s.repo.SavePost(ctx, p)
		if err != nil {
			s.log.Printf("bulk create: post %d/%d failed: %v", i+1, len(posts), err)
			return nil, fmt.Errorf("%w: failed to bulk create posts", domain.ErrUnexpected)
		}
		created = append(created, out)
	}

	s.cache.Remove(domain.CacheKeyUserPosts(user.Username))
	s.log.Printf("bulk created %d posts for user=%s", len(created), user.Username)
	return created, nil
}

func (s *Posts) ByUsername(ctx context.Context, username string) ([]domain.Post, error) {
	s.counter.Increment()

	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrBadParams)
	}

	key := domain.CacheKeyUserPosts(username)
	if v, ok := s.cache.Get(key); ok {
		if posts, ok := v.([]domain.Post); ok {
			return posts, nil
		}
	}

	posts, err := s.repo.PostsByUsername(ctx, username)
	if err != nil {
		s.log.Printf("fetch posts for user=%q failed: %v", username, err)
		return nil, fmt.Errorf("%w: failed to fetch posts", domain.ErrUnexpected)
	}
	s.cache.Put(key, posts)
	return posts, nil
}
