package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionCookie = "portfolio_sid"
	sessionMaxAge = 30 * 24 * time.Hour
	flashTTL      = 10 * time.Minute
	flashKeyFmt   = "portfolio:flash:%s"
)

// redisStore keeps only a random session id in the browser; messages live in a Redis list.
type redisStore struct {
	rdb    redis.Cmdable
	secure bool
}

func NewRedisStore(rdb redis.Cmdable, secure bool) FlashStore {
	return &redisStore{rdb: rdb, secure: secure}
}

func (s *redisStore) Add(c *gin.Context, f Flash) error {
	sid := s.sessionID(c, true)
	raw, err := json.Marshal(f)
	if err != nil {
		return err
	}
	key := fmt.Sprintf(flashKeyFmt, sid)
	ctx := c.Request.Context()

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, raw)
		pipe.Expire(ctx, key, flashTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store flash: %w", err)
	}
	return nil
}

func (s *redisStore) Pop(c *gin.Context) ([]Flash, error) {
	sid := s.sessionID(c, false)
	if sid == "" {
		return nil, nil
	}
	key := fmt.Sprintf(flashKeyFmt, sid)
	ctx := c.Request.Context()

	var items *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read flash: %w", err)
	}
	return decodeItems(items.Val()), nil
}

func decodeItems(items []string) []Flash {
	out := make([]Flash, 0, len(items))
	for _, item := range items {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// sessionID returns the browser's session id, issuing one when create is set.
func (s *redisStore) sessionID(c *gin.Context, create bool) string {
	if v, ok := c.Get(sessionCookie); ok {
		return v.(string)
	}
	if sid, err := c.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(sid); err == nil {
			return sid
		}
	}
	if !create {
		return ""
	}
	sid := uuid.NewString()
	c.Set(sessionCookie, sid)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, sid, int(sessionMaxAge/time.Second), "/", "", s.secure, true)
	return sid
}
