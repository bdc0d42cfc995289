package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Key(t *testing.T) {
	store := NewRedisStore(nil, "session:", time.Hour)

	require.Equal(t, "session:abc:currentUser", store.key("abc", CurrentUserKey))
}

func TestRedisStore_DeleteWithoutKeys(t *testing.T) {
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "session:", time.Hour)

	require.NoError(t, store.Delete(context.Background(), "abc"))
}
