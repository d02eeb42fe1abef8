package domain

import "strconv"

// Ключи кеша — единое место, чтобы не расползались по коду.
const CacheKeyAllUsers = "all_users"

func CacheKeyUser(id UserID) string             { return "user_" + strconv.FormatInt(id, 10) }
func CacheKeyUserByName(username string) string { return "user_username_" + username }
func CacheKeyPost(id PostID) string             { return "post_" + strconv.FormatInt(id, 10) }
func CacheKeyUserPosts(username string) string  { return "user_posts_" + username }

// Простой k/v интерфейс поверх живых значений (без сериализации и TTL).
// Реализация — внутрипроцессная карта под мьютексом.
type Cache interface {
	Put(key string, val any)
	Get(key string) (any, bool)
	Remove(keys ...string)
	Clear()
}
