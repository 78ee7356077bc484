package repo

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoomLocker serializes booking admission per room. The lock must be held
// across the conflict check and the insert; without it two overlapping
// requests could both pass the check and commit.
type RoomLocker interface {
	Acquire(ctx context.Context, roomID string) (release func(), err error)
}

const (
	roomLockTTL   = 5 * time.Second
	roomLockRetry = 25 * time.Millisecond
)

// Delete only if the lock still holds our token; a lock that expired and was
// re-acquired by another request must not be released from here.
var roomLockRelease = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type roomLockRedis struct{ rdb *redis.Client }

// NewRoomLockRedis returns a RoomLocker backed by Redis SET NX, so the guard
// holds across multiple service instances sharing the same Redis.
func NewRoomLockRedis(rdb *redis.Client) RoomLocker { return &roomLockRedis{rdb: rdb} }

func (l *roomLockRedis) key(roomID string) string { return "roomlock:" + roomID }

func (l *roomLockRedis) Acquire(ctx context.Context, roomID string) (func(), error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil { return nil, err }
	token := hex.EncodeToString(buf)

	for {
		ok, err := l.rdb.SetNX(ctx, l.key(roomID), token, roomLockTTL).Result()
		if err != nil { return nil, err }
		if ok { break }
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(roomLockRetry):
		}
	}

	release := func() {
		_ = roomLockRelease.Run(context.Background(), l.rdb, []string{l.key(roomID)}, token).Err()
	}
	return release, nil
}
