package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie  = "portfolio_flash"
	flashMaxAge  = 300
	pendingFlash = "session.pending_flash"
)

// cookieStore keeps pending messages in the browser. Used when Redis is not configured.
type cookieStore struct {
	secure bool
}

func NewCookieStore(secure bool) FlashStore {
	return &cookieStore{secure: secure}
}

func (s *cookieStore) Add(c *gin.Context, f Flash) error {
	pending := s.pending(c)
	pending = append(pending, f)
	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	c.Set(pendingFlash, pending)
	s.write(c, base64.RawURLEncoding.EncodeToString(raw), flashMaxAge)
	return nil
}

func (s *cookieStore) Pop(c *gin.Context) ([]Flash, error) {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil, nil
	}
	c.Set(pendingFlash, []Flash{})
	s.write(c, "", -1)
	// a garbled cookie is dropped rather than shown
	flashes, _ := decodeFlashes(value)
	return flashes, nil
}

// pending returns messages already queued in this request, falling back to the
// incoming cookie.
func (s *cookieStore) pending(c *gin.Context) []Flash {
	if v, ok := c.Get(pendingFlash); ok {
		return v.([]Flash)
	}
	value, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	flashes, _ := decodeFlashes(value)
	return flashes
}

// write sets the flash cookie, replacing one already set earlier in this response.
func (s *cookieStore) write(c *gin.Context, value string, maxAge int) {
	header := c.Writer.Header()
	var kept []string
	for _, v := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(v, flashCookie+"=") {
			kept = append(kept, v)
		}
	}
	header.Del("Set-Cookie")
	for _, v := range kept {
		header.Add("Set-Cookie", v)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, value, maxAge, "/", "", s.secure, true)
}

func decodeFlashes(value string) ([]Flash, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, err
	}
	var out []Flash
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
