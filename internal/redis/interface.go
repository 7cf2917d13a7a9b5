package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so that repositories depend on an
// interface from this package rather than on go-redis directly.
type Client interface {
	redis.UniversalClient
}

// Pipeliner wraps redis.Pipeliner for batch operations
type Pipeliner interface {
	redis.Pipeliner
}
