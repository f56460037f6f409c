package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory-sync/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func signedToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  1,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString(middleware.GetJWTSecret())
	require.NoError(t, err)
	return s
}

func newServer(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.InitAuth("hub-test-secret")

	hub := NewHub(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return hub, srv
}

func TestServeWs_RejectsMissingAndForeignTokens(t *testing.T) {
	_, srv := newServer(t)

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/ws?token=" + signedToken(t, "guest"))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHub_PublishReachesClient(t *testing.T) {
	hub, srv := newServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + signedToken(t, middleware.RoleStaff)
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), "7", []byte(`{"event":"inventory_changed"}`)))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"inventory_changed"}`, string(msg))
}

func TestHub_PublishDoesNotBlockWhenFull(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	for i := 0; i < cap(hub.Broadcast); i++ {
		require.NoError(t, hub.Publish(context.Background(), "", []byte("x")))
	}
	assert.ErrorIs(t, hub.Publish(context.Background(), "", []byte("x")), ErrHubBusy)
}

func TestHub_ShutdownReleasesClients(t *testing.T) {
	hub := NewHub(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	left := make(chan struct{})
	go func() {
		(&Client{Hub: hub}).leave()
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("unregister blocked after the hub stopped")
	}
}

func TestServeWs_AfterShutdownClosesConnection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	middleware.InitAuth("hub-test-secret")
	hub := NewHub(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + signedToken(t, middleware.RoleAdmin)
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
	assert.Equal(t, 0, hub.Clients())
}
