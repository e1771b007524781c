// README: Redis client initialization from a redis:// URL.
package infra

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

func NewRedis(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}
