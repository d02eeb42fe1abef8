package service

import (
	"context"
	"fmt"
	"log"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
)

// Users — CRUD пользователей поверх репозитория с кешом.
// Правила инвалидации ключей живут только здесь.
type Users struct {
	log     *log.Logger
	repo    domain.UsersRepo
	cache   domain.Cache
	counter *Counter
}

func NewUsers(logger *log.Logger, repo domain.UsersRepo, cache domain.Cache, counter *Counter) *Users {
	return &Users{log: logger, repo: repo, cache: cache, counter: counter}
}

func (s *Users) Create(ctx context.Context, u domain.User) (domain.User, error) {
	s.counter.Increment()

	if u.Email == "" {
		return domain.User{}, fmt.Errorf("%w: email cannot be empty", domain.ErrBadParams)
	}
	if u.Password == "" {
		return domain.User{}, fmt.Errorf("%w: password cannot be empty", domain.ErrBadParams)
	}
	if u.Username == "" {
		return domain.User{}, fmt.Errorf("%w: username cannot be empty", domain.ErrBadParams)
	}

	u.ID = 0
	created, err := s.repo.SaveUser(ctx, u)
	if err != nil {
		s.log.Printf("create user failed: %v", err)
		return domain.User{}, fmt.Errorf("%w: failed to create user", domain.ErrUnexpected)
	}

	// Снимок полного списка устарел
	s.cache.Remove(domain.CacheKeyAllUsers)
	s.log.Printf("user created: id=%d username=%s", created.ID, created.Username)
	return created, nil
}

func (s *Users) All(ctx context.Context) ([]domain.User, error) {
	s.counter.Increment()

	if v, ok := s.cache.Get(domain.CacheKeyAllUsers); ok {
		if users, ok := v.([]domain.User); ok {
			return users, nil
		}
	}

	users, err := s.repo.AllUsers(ctx)
	if err != nil {
		s.log.Printf("fetch users failed: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch users", domain.ErrUnexpected)
	}
	s.cache.Put(domain.CacheKeyAllUsers, users)
	return users, nil
}

// ByID: nil без ошибки — пользователя нет, это легальный исход.
func (s *Users) ByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	s.counter.Increment()

	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user id", domain.ErrBadParams)
	}

	key := domain.CacheKeyUser(id)
	if v, ok := s.cache.Get(key); ok {
		if u, ok := v.(domain.User); ok {
			return &u, nil
		}
	}

	u, err := s.repo.UserByID(ctx, id)
	if err != nil {
		s.log.Printf("fetch user id=%d failed: %v", id, err)
		return nil, fmt.Errorf("%w: failed to fetch user", domain.ErrUnexpected)
	}
	if u != nil {
		s.cache.Put(key, *u)
	}
	return u, nil
}

func (s *Users) ByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.counter.Increment()

	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", domain.ErrBadParams)
	}

	key := domain.CacheKeyUserByName(username)
	if v, ok := s.cache.Get(key); ok {
		if u, ok := v.(domain.User); ok {
			return &u, nil
		}
	}

	u, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		s.log.Printf("fetch user username=%q failed: %v", username, err)
		return nil, fmt.Errorf("%w: failed to fetch user", domain.ErrUnexpected)
	}
	if u != nil {
		s.cache.Put(key, *u)
	}
	return u, nil
}

// Update применяет частичное обновление: nil-поля не трогаются.
func (s *Users) Update(ctx context.Context, id domain.UserID, upd domain.UserUpdate) (domain.User, error) {
	s.counter.Increment()

	if id <= 0 {
		return domain.User{}, fmt.Errorf("%w: invalid user id", domain.ErrBadParams)
	}

	u, err := s.repo.UserByID(ctx, id)
	if err != nil {
		s.log.Printf("update user id=%d: fetch failed: %v", id, err)
		return domain.User{}, fmt.Errorf("%w: failed to update user", domain.ErrUnexpected)
	}
	if u == nil {
		return domain.User{}, fmt.Errorf("%w: user with id %d", domain.ErrNotFound, id)
	}

	oldUsername := u.Username
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}

	updated, err := s.repo.SaveUser(ctx, *u)
	if err != nil {
		s.log.Printf("update user id=%d failed: %v", id, err)
		return domain.User{}, fmt.Errorf("%w: failed to update user", domain.ErrUnexpected)
	}

	s.cache.Put(domain.CacheKeyUser(id), updated)
	// Запись по username хранит прежнее содержимое; при смене имени
	// устаревает и лента постов под старым именем
	stale := []string{domain.CacheKeyAllUsers, domain.CacheKeyUserByName(oldUsername)}
	if updated.Username != oldUsername {
		stale = append(stale, domain.CacheKeyUserPosts(oldUsername))
	}
	s.cache.Remove(stale...)
	s.log.Printf("user updated: id=%d", id)
	return updated, nil
}

// Delete каскадно удаляет и посты пользователя (FK ON DELETE CASCADE),
// поэтому вместе с ключами пользователя сносится и его лента.
func (s *Users) Delete(ctx context.Context, id domain.UserID) error {
	s.counter.Increment()

	if id <= 0 {
		return fmt.Errorf("%w: invalid user id", domain.ErrBadParams)
	}

	u, err := s.repo.UserByID(ctx, id)
	if err != nil {
		s.log.Printf("delete user id=%d: fetch failed: %v", id, err)
		return fmt.Errorf("%w: failed to delete user", domain.ErrUnexpected)
	}
	if u == nil {
		return fmt.Errorf("%w: user with id %d", domain.ErrNotFound, id)
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		s.log.Printf("delete user id=%d failed: %v", id, err)
		return fmt.Errorf("%w: failed to delete user", domain.ErrUnexpected)
	}

	s.cache.Remove(
		domain.CacheKeyUser(id),
		domain.CacheKeyUserByName(u.Username),
		domain.CacheKeyAllUsers,
		domain.CacheKeyUserPosts(u.Username),
	)
	s.log.Printf("user deleted: id=%d", id)
	return nil
}
