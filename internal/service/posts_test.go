package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
)

func newPostsService(repo *fakePostsRepo) (*Posts, *Counter, domain.Cache) {
	cache := testCache()
	counter := NewCounter()
	return NewPosts(testLogger(), repo, cache, counter), counter, cache
}

func alice() *domain.User {
	return &domain.User{ID: 1, Username: "alice", Email: "a@x.com", Password: "p"}
}

func TestPostsCreate(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, cache := newPostsService(repo)
	cache.Put(domain.CacheKeyUserPosts("alice"), []domain.Post{})

	p, err := svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	require.NotNil(t, p.User)
	assert.Equal(t, "alice", p.User.Username)

	// Инвалидирован именно ключ ленты владельца
	_, ok := cache.Get(domain.CacheKeyUserPosts("alice"))
	assert.False(t, ok)
}

func TestPostsCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		post domain.Post
		user *domain.User
	}{
		{name: "nil user", post: domain.Post{Title: "T", Text: "B"}, user: nil},
		{name: "empty title", post: domain.Post{Text: "B"}, user: alice()},
		{name: "empty text", post: domain.Post{Title: "T"}, user: alice()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakePostsRepo()
			svc, _, _ := newPostsService(repo)

			_, err := svc.Create(context.Background(), tt.post, tt.user)

			assert.ErrorIs(t, err, domain.ErrBadParams)
			assert.Equal(t, 0, repo.saveCalls)
		})
	}
}

func TestPostsAllIsNotCached(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, _ := newPostsService(repo)
	_, err := svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())
	require.NoError(t, err)

	_, err = svc.All(context.Background())
	require.NoError(t, err)
	_, err = svc.All(context.Background())
	require.NoError(t, err)

	// Полный список всегда ходит в БД
	assert.Equal(t, 2, repo.allCalls)
}

func TestPostsByIDSecondCallHitsCache(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, _ := newPostsService(repo)
	created, err := svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())
	require.NoError(t, err)

	p1, err := svc.ByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, p1)
	p2, err := svc.ByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, p2)

	assert.Equal(t, *p1, *p2)
	assert.Equal(t, 1, repo.byIDCalls)
}

func TestPostsByIDInvalid(t *testing.T) {
	svc, _, _ := newPostsService(newFakePostsRepo())

	_, err := svc.ByID(context.Background(), -5)
	assert.ErrorIs(t, err, domain.ErrBadParams)
}

func TestPostsUpdateMergesAndInvalidates(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, cache := newPostsService(repo)
	created, err := svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())
	require.NoError(t, err)
	cache.Put(domain.CacheKeyUserPosts("alice"), []domain.Post{created})

	updated, err := svc.Update(context.Background(), created.ID, domain.PostUpdate{
		Title: strptr("T2"),
	})

	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "B", updated.Text)

	v, ok := cache.Get(domain.CacheKeyPost(created.ID))
	require.True(t, ok)
	assert.Equal(t, updated, v)
	_, ok = cache.Get(domain.CacheKeyUserPosts("alice"))
	assert.False(t, ok)
}

func TestPostsUpdateNotFound(t *testing.T) {
	svc, _, _ := newPostsService(newFakePostsRepo())

	_, err := svc.Update(context.Background(), 42, domain.PostUpdate{Title: strptr("x")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostsDelete(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, cache := newPostsService(repo)
	created, err := svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())
	require.NoError(t, err)

	cache.Put(domain.CacheKeyPost(created.ID), created)
	cache.Put(domain.CacheKeyUserPosts("alice"), []domain.Post{created})

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, ok := cache.Get(domain.CacheKeyPost(created.ID))
	assert.False(t, ok)
	_, ok = cache.Get(domain.CacheKeyUserPosts("alice"))
	assert.False(t, ok)
}

func TestPostsDeleteNotFound(t *testing.T) {
	svc, _, _ := newPostsService(newFakePostsRepo())

	assert.ErrorIs(t, svc.Delete(context.Background(), 42), domain.ErrNotFound)
}

func TestPostsBulkCreate(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, cache := newPostsService(repo)
	cache.Put(domain.CacheKeyUserPosts("alice"), []domain.Post{})

	created, err := svc.BulkCreate(context.Background(), []domain.Post{
		{Title: "T1", Text: "B1"},
		{Title: "T2", Text: "B2"},
	}, alice())

	require.NoError(t, err)
	require.Len(t, created, 2)
	// Порядок входа сохранен
	assert.Equal(t, "T1", created[0].Title)
	assert.Equal(t, "T2", created[1].Title)

	_, ok := cache.Get(domain.CacheKeyUserPosts("alice"))
	assert.False(t, ok)
}

func TestPostsBulkCreateValidatesBeforePersisting(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, _ := newPostsService(repo)

	_, err := svc.BulkCreate(context.Background(), []domain.Post{
		{Title: "T1", Text: "B1"},
		{Title: "", Text: "B2"}, // невалидный второй элемент
	}, alice())

	assert.ErrorIs(t, err, domain.ErrBadParams)
	// Ни один элемент не записан
	assert.Equal(t, 0, repo.saveCalls)
}

func TestPostsBulkCreateEmptyOrNilUser(t *testing.T) {
	svc, _, _ := newPostsService(newFakePostsRepo())

	_, err := svc.BulkCreate(context.Background(), nil, alice())
	assert.ErrorIs(t, err, domain.ErrBadParams)

	_, err = svc.BulkCreate(context.Background(), []domain.Post{{Title: "T", Text: "B"}}, nil)
	assert.ErrorIs(t, err, domain.ErrBadParams)
}

func TestPostsBulkCreateStoreFailureMidBatch(t *testing.T) {
	repo := newFakePostsRepo()
	repo.failAfterSaves = 1
	svc, _, _ := newPostsService(repo)

	_, err := svc.BulkCreate(context.Background(), []domain.Post{
		{Title: "T1", Text: "B1"},
		{Title: "T2", Text: "B2"},
	}, alice())

	assert.ErrorIs(t, err, domain.ErrUnexpected)
	// Первый элемент уже записан: отката между сущностями нет
	assert.Len(t, repo.posts, 1)
}

func TestPostsByUsernameScenario(t *testing.T) {
	repo := newFakePostsRepo()
	svc, _, cache := newPostsService(repo)

	created, err := svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())
	require.NoError(t, err)

	// Промах: грузим из БД и кешируем
	posts, err := svc.ByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, created.ID, posts[0].ID)
	_, ok := cache.Get(domain.CacheKeyUserPosts("alice"))
	assert.True(t, ok)

	// Хит: БД не трогаем
	again, err := svc.ByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, posts, again)
	assert.Equal(t, 1, repo.byUsernameCalls)
}

func TestPostsByUsernameEmpty(t *testing.T) {
	svc, _, _ := newPostsService(newFakePostsRepo())

	_, err := svc.ByUsername(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrBadParams)
}

func TestPostsOperationsCountRequests(t *testing.T) {
	repo := newFakePostsRepo()
	svc, counter, _ := newPostsService(repo)

	_, _ = svc.Create(context.Background(), domain.Post{Title: "T", Text: "B"}, alice())
	_, _ = svc.All(context.Background())
	_, _ = svc.ByID(context.Background(), 1)
	_, _ = svc.ByUsername(context.Background(), "alice")

	assert.Equal(t, int64(4), counter.Count())
}
