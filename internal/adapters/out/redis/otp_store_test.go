package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexye/internal/adapters/out/redis"
	"nexye/internal/pkg/errs"
)

func newStore(t *testing.T) (*redis.OTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewOTPStore(client), mr
}

func TestOTPStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save_and_load", func(t *testing.T) {
		store, _ := newStore(t)

		require.NoError(t, store.Save(ctx, "admin@nexye.in", "4821"))

		code, err := store.Load(ctx, "admin@nexye.in")
		require.NoError(t, err)
		assert.Equal(t, "4821", code)
	})

	t.Run("save_replaces_previous_code", func(t *testing.T) {
		store, _ := newStore(t)

		require.NoError(t, store.Save(ctx, "admin@nexye.in", "1111"))
		require.NoError(t, store.Save(ctx, "admin@nexye.in", "2222"))

		code, err := store.Load(ctx, "admin@nexye.in")
		require.NoError(t, err)
		assert.Equal(t, "2222", code)
	})

	t.Run("missing_code_is_not_found", func(t *testing.T) {
		store, _ := newStore(t)

		_, err := store.Load(ctx, "nobody@nexye.in")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("expired_code_behaves_like_a_miss", func(t *testing.T) {
		store, mr := newStore(t)

		require.NoError(t, store.Save(ctx, "admin@nexye.in", "4821"))
		mr.FastForward(redis.OTPTTL + time.Second)

		_, err := store.Load(ctx, "admin@nexye.in")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delete_consumes_the_code", func(t *testing.T) {
		store, _ := newStore(t)

		require.NoError(t, store.Save(ctx, "admin@nexye.in", "4821"))
		require.NoError(t, store.Delete(ctx, "admin@nexye.in"))

		_, err := store.Load(ctx, "admin@nexye.in")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("delete_of_absent_code_is_a_no_op", func(t *testing.T) {
		store, _ := newStore(t)
		require.NoError(t, store.Delete(ctx, "nobody@nexye.in"))
	})
}
