package middleware

import (
	"net/http"

	"github.com/fabianengeln/paarspiel/internal/models"
	"github.com/fabianengeln/paarspiel/internal/services"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie issued when a game starts.
const CookieName = "paarspiel_session"

const gameKey = "game_session"

// FailureMode picks how an unauthorized request is rendered.
type FailureMode int

const (
	// RedirectToHome sends page requests back to the start screen.
	RedirectToHome FailureMode = iota
	// JSONStatus answers with {"status":"error","message":...}.
	JSONStatus
	// JSONError answers with {"error":...}.
	JSONError
)

// RequireGame resolves the session cookie to a running game before every
// turn-bearing route. Requests without one never reach the handler.
func RequireGame(store *services.SessionStore, mode FailureMode) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(CookieName); err == nil {
			if game := store.Get(token); game != nil {
				c.Set(gameKey, game)
				c.Next()
				return
			}
		}

		switch mode {
		case JSONStatus:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": "error", "message": "no active turn"})
		case JSONError:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "no active game"})
		default:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		}
	}
}

// CurrentGame returns the session attached by RequireGame, or nil when the
// route is not guarded.
func CurrentGame(c *gin.Context) *models.GameSession {
	if v, ok := c.Get(gameKey); ok {
		if game, ok := v.(*models.GameSession); ok {
			return game
		}
	}
	return nil
}
