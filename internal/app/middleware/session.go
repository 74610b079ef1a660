package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"skinlab/internal/app/analysis"
	"skinlab/internal/app/pkg/session"
)

const (
	SessionCookie = "session_id"
	SessionKey    = "analysis_session"
)

// SessionMiddleware находит сессию страницы по cookie или создает новую
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, err := c.Cookie(SessionCookie); err == nil && sessionID != "" {
			if sess, ok := store.Get(sessionID); ok {
				c.Set(SessionKey, sess)
				c.Next()
				return
			}
		}

		sess := store.Create()
		logrus.WithField("session_id", sess.ID()).Debug("new page session")

		// cookie живет до закрытия браузера, как и состояние страницы
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID(), 0, "/", "", false, true)
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// CurrentSession получает сессию страницы из контекста
func CurrentSession(c *gin.Context) (*analysis.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*analysis.Session)
	return sess, ok
}
