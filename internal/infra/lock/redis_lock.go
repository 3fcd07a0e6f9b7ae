package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/salon-pos/internal/domain/closing"
)

const DefaultTTL = 30 * time.Second

// releaseScript deletes the key only while it still holds our token, so an
// expired holder cannot free a lock taken over by someone else.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "closing_lock").Logger(),
	}
}

var _ closing.Locker = (*RedisLocker)(nil)

func Key(salonID string) string {
	return "salon:" + salonID + ":closing_lock"
}

func (l *RedisLocker) Acquire(ctx context.Context, salonID string) (func(), bool, error) {
	key := Key(salonID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// the request context may already be cancelled
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := releaseScript.Run(rctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("salon_id", salonID).Msg("release closing lock")
		}
	}
	return release, true, nil
}
