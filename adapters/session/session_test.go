package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// roundTrip adds flashes on one request and pops them on a follow-up request that
// carries the cookies the first one set.
func roundTrip(t *testing.T, store FlashStore, add []Flash) []Flash {
	t.Helper()

	r := gin.New()
	r.POST("/add", func(c *gin.Context) {
		for _, f := range add {
			require.NoError(t, store.Add(c, f))
		}
		c.Status(http.StatusSeeOther)
	})
	var popped []Flash
	r.GET("/pop", func(c *gin.Context) {
		var err error
		popped, err = store.Pop(c)
		require.NoError(t, err)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add", nil))

	req := httptest.NewRequest(http.MethodGet, "/pop", nil)
	for _, ck := range w.Result().Cookies() {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	return popped
}

func TestCookieStore_RoundTrip(t *testing.T) {
	store := NewCookieStore(false)
	got := roundTrip(t, store, []Flash{Success("Thank you"), Error("Oops")})
	assert.Equal(t, []Flash{Success("Thank you"), Error("Oops")}, got)
}

func TestCookieStore_SingleSetCookiePerResponse(t *testing.T) {
	store := NewCookieStore(false)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	c.SetCookie("other", "keep", 60, "/", "", false, true)

	require.NoError(t, store.Add(c, Success("one")))
	require.NoError(t, store.Add(c, Error("two")))

	var flashHeaders int
	for _, ck := range w.Result().Cookies() {
		if ck.Name == flashCookie {
			flashHeaders++
			got, err := decodeFlashes(ck.Value)
			require.NoError(t, err)
			assert.Equal(t, []Flash{Success("one"), Error("two")}, got)
		}
	}
	assert.Equal(t, 1, flashHeaders)
	assert.Contains(t, w.Header().Values("Set-Cookie")[0], "other=keep")
}

func TestCookieStore_AddAfterPopDropsConsumed(t *testing.T) {
	store := NewCookieStore(false)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	raw := encodeForTest(t, []Flash{Success("old")})
	c.Request.AddCookie(&http.Cookie{Name: flashCookie, Value: raw})

	popped, err := store.Pop(c)
	require.NoError(t, err)
	assert.Equal(t, []Flash{Success("old")}, popped)
	require.NoError(t, store.Add(c, Error("new")))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	got, err := decodeFlashes(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, []Flash{Error("new")}, got)
}

func TestCookieStore_PopWithoutCookie(t *testing.T) {
	store := NewCookieStore(false)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	got, err := store.Pop(c)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCookieStore_GarbledCookieDropped(t *testing.T) {
	store := NewCookieStore(false)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: flashCookie, Value: "not!base64"})

	got, err := store.Pop(c)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, w.Header().Get("Set-Cookie"), flashCookie+"=;")
}

func TestRedisStore_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })

	store := NewRedisStore(rdb, false)
	got := roundTrip(t, store, []Flash{Success("Thank you for your message! I will get back to you soon.")})
	assert.Equal(t, []Flash{Success("Thank you for your message! I will get back to you soon.")}, got)

	keys, err := rdb.Keys(ctx, "portfolio:flash:*").Result()
	require.NoError(t, err)
	assert.Empty(t, keys, "pop must clear the list")
}

func encodeForTest(t *testing.T, flashes []Flash) string {
	t.Helper()
	raw, err := json.Marshal(flashes)
	require.NoError(t, err)
	return base64.RawURLEncoding.EncodeToString(raw)
}
