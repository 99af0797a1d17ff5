package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/cat-arcade/internal/core"
	"github.com/vovakirdan/cat-arcade/internal/registry"
	"github.com/vovakirdan/cat-arcade/internal/session"
)

const (
	jsonKeyError = "error"

	errInvalidRequest = "invalid request"
	errUnknownGame    = "unknown game"
	errNotFound       = "session not found"
	errClosed         = "session closed"
)

type createSessionPayload struct {
	Game string `json:"game" binding:"required"`
}

type selectPayload struct {
	EntityID *core.EntityID `json:"entity_id" binding:"required"`
}

type directionPayload struct {
	Direction string `json:"direction" binding:"required"`
	Pressed   bool   `json:"pressed"`
}

type viewportPayload struct {
	Width float64 `json:"width" binding:"required,gt=0"`
}

// sessionResponse is returned when a session is created.
type sessionResponse struct {
	ID       string        `json:"id"`
	Snapshot core.Snapshot `json:"snapshot"`
}

// gameInfo is one entry of the game list.
type gameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Handler groups the HTTP handlers around a hub.
type Handler struct {
	hub *Hub
}

// NewHandler creates a Handler serving the sessions of hub.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// ListGames returns every registered game.
func (h *Handler) ListGames(c *gin.Context) {
	games := registry.List()
	out := make([]gameInfo, 0, len(games))
	for _, g := range games {
		out = append(out, gameInfo{ID: g.ID, Title: g.Title})
	}
	c.JSON(http.StatusOK, out)
}

// CreateSession starts an idle session of the requested game.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{jsonKeyError: errInvalidRequest})
		return
	}

	id, sess, err := h.hub.Create(req.Game)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{jsonKeyError: errUnknownGame})
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{ID: id, Snapshot: sess.Snapshot()})
}

// GetSession returns the session's snapshot.
func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

// DeleteSession exits the session and forgets it.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.hub.Remove(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{jsonKeyError: errNotFound})
		return
	}
	c.Status(http.StatusNoContent)
}

// Start moves an idle session into play.
func (h *Handler) Start(c *gin.Context) {
	h.apply(c, (*session.Session).Start)
}

// Restart re-initializes the session and plays again.
func (h *Handler) Restart(c *gin.Context) {
	h.apply(c, (*session.Session).Restart)
}

// Select handles a pointer selection of an entity.
func (h *Handler) Select(c *gin.Context) {
	var req selectPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{jsonKeyError: errInvalidRequest})
		return
	}
	h.apply(c, func(s *session.Session) error {
		return s.Select(*req.EntityID)
	})
}

// Direction handles a direction key press or release.
func (h *Handler) Direction(c *gin.Context) {
	var req directionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{jsonKeyError: errInvalidRequest})
		return
	}
	dir, err := core.ParseDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{jsonKeyError: err.Error()})
		return
	}
	h.apply(c, func(s *session.Session) error {
		return s.Direction(dir, req.Pressed)
	})
}

// Viewport records the client's play-area width in pixels.
func (h *Handler) Viewport(c *gin.Context) {
	var req viewportPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{jsonKeyError: errInvalidRequest})
		return
	}
	h.apply(c, func(s *session.Session) error {
		return s.SetViewport(req.Width)
	})
}

// apply runs op on the addressed session and answers with its snapshot.
func (h *Handler) apply(c *gin.Context, op func(*session.Session) error) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := op(sess); err != nil {
		if errors.Is(err, session.ErrClosed) {
			c.JSON(http.StatusGone, gin.H{jsonKeyError: errClosed})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{jsonKeyError: err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (h *Handler) lookup(c *gin.Context) (*session.Session, bool) {
	sess, err := h.hub.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{jsonKeyError: errNotFound})
		return nil, false
	}
	return sess, true
}
