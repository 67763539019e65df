package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/LovationAdmin/expense-api/events"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

const userKey = "user_id"

// WSHandler is the realtime hub. Each socket belongs to one user and only
// receives that user's change notifications.
type WSHandler struct {
	M      *melody.Melody
	tokens *utils.TokenManager
}

type wsMessage struct {
	Type     string `json:"type"`
	EntityID string `json:"entityId"`
}

func NewWSHandler(tokens *utils.TokenManager) *WSHandler {
	m := melody.New()
	m.Config.MaxMessageSize = 1024

	// Keep-alive for proxies that drop idle connections
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		utils.LogWebSocket("connect", sessionUser(s))
	})
	m.HandleDisconnect(func(s *melody.Session) {
		utils.LogWebSocket("disconnect", sessionUser(s))
	})
	m.HandleError(func(s *melody.Session, err error) {
		utils.SafeWarn("[ws] session error for %s: %v", sessionUser(s), err)
	})

	return &WSHandler{M: m, tokens: tokens}
}

// HandleWS authenticates the ?token= query parameter, since browsers cannot
// set headers on the upgrade request.
func (h *WSHandler) HandleWS(c *gin.Context) {
	claims, err := h.tokens.ParseAccessToken(c.Query("token"))
	if err != nil {
		respondError(c, http.StatusUnauthorized, models.CodeUnauthorized, "Invalid or expired token")
		return
	}

	keys := map[string]interface{}{userKey: claims.UserID}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		utils.SafeWarn("[ws] upgrade failed: %v", err)
	}
}

// Publish pushes the event to every open socket of its user.
func (h *WSHandler) Publish(_ context.Context, e events.Event) error {
	if e.UserID == "" {
		return nil
	}
	msg, err := json.Marshal(wsMessage{Type: e.Type, EntityID: e.EntityID})
	if err != nil {
		return err
	}
	return h.M.BroadcastFilter(msg, func(s *melody.Session) bool {
		return sessionUser(s) == e.UserID
	})
}

func (h *WSHandler) Close() error {
	return h.M.Close()
}

func sessionUser(s *melody.Session) string {
	v, ok := s.Get(userKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
