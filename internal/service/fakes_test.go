package service

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	"github.com/rize-zxc/Project-Wesker/internal/infra/cache/memory"
)

var errStore = errors.New("store failure")

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func testCache() *memory.Cache { return memory.New(testLogger()) }

// fakeUsersRepo — потокобезопасная карта вместо Postgres; считает обращения,
// чтобы тесты могли проверять, что на кеш-хите в хранилище не ходят.
type fakeUsersRepo struct {
	mu     sync.Mutex
	users  map[domain.UserID]domain.User
	nextID domain.UserID

	saveCalls int
	byIDCalls int
	allCalls  int

	fail bool
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[domain.UserID]domain.User)}
}

func (f *fakeUsersRepo) Close()                     {}
func (f *fakeUsersRepo) Ping(context.Context) error { return nil }

func (f *fakeUsersRepo) SaveUser(_ context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.fail {
		return domain.User{}, errStore
	}
	if u.ID == 0 {
		f.nextID++
		u.ID = f.nextID
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsersRepo) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byIDCalls++
	if f.fail {
		return nil, errStore
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsersRepo) UserByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsersRepo) AllUsers(context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	if f.fail {
		return nil, errStore
	}
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsersRepo) UserExists(_ context.Context, id domain.UserID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUsersRepo) DeleteUser(_ context.Context, id domain.UserID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStore
	}
	delete(f.users, id)
	return nil
}

// fakePostsRepo — то же для постов.
type fakePostsRepo struct {
	mu     sync.Mutex
	posts  map[domain.PostID]domain.Post
	nextID domain.PostID

	saveCalls       int
	byIDCalls       int
	byUsernameCalls int
	allCalls        int

	failAfterSaves int // >0: SavePost падает после указанного числа успехов
	fail           bool
}

func newFakePostsRepo() *fakePostsRepo {
	return &fakePostsRepo{posts: make(map[domain.PostID]domain.Post)}
}

func (f *fakePostsRepo) SavePost(_ context.Context, p domain.Post) (domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail || (f.failAfterSaves > 0 && f.saveCalls >= f.failAfterSaves) {
		return domain.Post{}, errStore
	}
	f.saveCalls++
	if p.ID == 0 {
		f.nextID++
		p.ID = f.nextID
	}
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePostsRepo) PostByID(_ context.Context, id domain.PostID) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byIDCalls++
	if f.fail {
		return nil, errStore
	}
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePostsRepo) AllPosts(context.Context) ([]domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	if f.fail {
		return nil, errStore
	}
	out := make([]domain.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePostsRepo) PostsByUsername(_ context.Context, username string) ([]domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byUsernameCalls++
	if f.fail {
		return nil, errStore
	}
	out := make([]domain.Post, 0)
	for _, p := range f.posts {
		if p.User != nil && p.User.Username == username {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostsRepo) PostExists(_ context.Context, id domain.PostID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.posts[id]
	return ok, nil
}

func (f *fakePostsRepo) DeletePost(_ context.Context, id domain.PostID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errStore
	}
	delete(f.posts, id)
	return nil
}

func strptr(s string) *string { return &s }
