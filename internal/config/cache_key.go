package config

import "fmt"

// CacheKey namespaces all Redis keys used by the application.
var CacheKey = cacheKeys{}

type cacheKeys struct{}

// QuizPayloadKey returns the cache key for a published quiz's student payload.
func (cacheKeys) QuizPayloadKey(quizID string) string {
	return fmt.Sprintf("quiz:%s:payload", quizID)
}
