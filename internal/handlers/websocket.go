package handlers

import (
	"log"
	"net/http"
	"strings"
	"sync"

	ws "github.com/DanCouper/joust/pkg/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			// Non-browser clients (no Origin) are allowed.
			return true
		}
		originMu.RLock()
		defer originMu.RUnlock()
		if devAllowAll {
			return true
		}
		if devMode && isLocalhostOrigin(origin) {
			return true
		}
		return allowedOrigins[origin]
	},
}

// Origin policy is set once by main at startup.
var (
	originMu       sync.RWMutex
	allowedOrigins = map[string]bool{}
	devMode        = false
	devAllowAll    = false
)

func SetWebSocketOriginPolicy(isDev bool, allowAllDev bool, origins []string) {
	originMu.Lock()
	defer originMu.Unlock()
	devMode = isDev
	devAllowAll = allowAllDev
	allowedOrigins = map[string]bool{}
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			allowedOrigins[o] = true
		}
	}
}

func isLocalhostOrigin(origin string) bool {
	for _, prefix := range []string{
		"http://localhost:", "http://127.0.0.1:", "http://[::1]:",
		"https://localhost:", "https://127.0.0.1:", "https://[::1]:",
	} {
		if strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

// HubProvider resolves the currently-active hub; the indirection lets main
// swap in a fresh hub after a panic.
type HubProvider func() (*ws.Hub, bool)

var hubProviderMu sync.RWMutex
var hubProvider HubProvider

func SetHubProvider(p HubProvider) {
	hubProviderMu.Lock()
	defer hubProviderMu.Unlock()
	hubProvider = p
}

func currentHub() (*ws.Hub, bool) {
	hubProviderMu.RLock()
	p := hubProvider
	hubProviderMu.RUnlock()
	if p == nil {
		return nil, false
	}
	return p()
}

// broadcastGameEvent pushes an accepted transition's result to the game's
// spectator feed. Best-effort: no hub, no broadcast.
func broadcastGameEvent(token, typ string, payload any) {
	if hub, ok := currentHub(); ok {
		hub.Broadcast(token, typ, payload)
	}
}

// WebSocketHandler upgrades a spectator connection and subscribes it to one
// game's feed (?game=<token>).
func WebSocketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.Query("game"))
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "game query param required"})
			return
		}
		hub, ok := currentHub()
		if !ok {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feed unavailable"})
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws upgrade error: %v", err)
			return
		}
		client := ws.NewClient(conn, hub, token)
		hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}
}
