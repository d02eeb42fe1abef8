package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "user_7", CacheKeyUser(7))
	assert.Equal(t, "user_username_alice", CacheKeyUserByName("alice"))
	assert.Equal(t, "post_3", CacheKeyPost(3))
	assert.Equal(t, "user_posts_alice", CacheKeyUserPosts("alice"))
	assert.Equal(t, "all_users", CacheKeyAllUsers)
}
