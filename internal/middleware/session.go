package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eswaridangeti/golden-hour-ai-prototype-real/internal/session"
)

// SessionCookie names the cookie that carries the session id.
const SessionCookie = "gh_session"

const sessionContextKey = "session"

// SessionMiddleware attaches a session accessor to every request, issuing a
// new id when the cookie is missing or malformed.
func SessionMiddleware(store session.Store, maxAge time.Duration, secure bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || !session.ValidID(id) {
			id = session.NewID()
			logger.Debug("Issued session", zap.String("session_id", id))
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, int(maxAge.Seconds()), "/", "", secure, true)

		c.Set(sessionContextKey, session.New(id, store))
		c.Next()
	}
}

// SessionFrom returns the accessor set by SessionMiddleware.
func SessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionContextKey).(*session.Session)
}
