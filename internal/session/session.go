// Package session establishes an opaque per-caller session identifier used
// only for daily quota accounting. It is not authentication.
package session

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"codeberg.org/socialhub/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	cookieName   = "socialhub_session"
	sessionIDKey = "session_id"

	// ContextKey is where the middleware stores the caller's session id
	ContextKey = "session_id"

	sessionMaxAge = 30 * 24 * 60 * 60 // seconds
)

// creates the cookie store backing caller sessions
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return store
}

// Middleware mints a session id on first contact and keeps it stable across
// requests. The id is attached to the gin context under ContextKey.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, cookieName)
		if err != nil {
			// a corrupt or re-keyed cookie falls back to a fresh session
			logger.Warn("failed to decode session cookie, issuing a new one", "error", err)
		}

		sessionID, _ := sess.Values[sessionIDKey].(string)

		if sessionID == "" {
			sessionID, err = newSessionID()
			if err != nil {
				logger.ErrorErr(err, "failed to generate session id")
				c.Next()
				return
			}

			sess.Values[sessionIDKey] = sessionID

			if err := sess.Save(c.Request, c.Writer); err != nil {
				logger.ErrorErr(err, "failed to save session cookie")
			}
		}

		c.Set(ContextKey, sessionID)
		c.Next()
	}
}

// returns the caller's session id, or "" when none was established
func FromContext(c *gin.Context) string {
	return c.GetString(ContextKey)
}

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// generates a session id from the current time plus a random base36 suffix
func newSessionID() (string, error) {
	suffix := make([]byte, 9)

	for i := range suffix {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate session id: %w", err)
		}

		suffix[i] = base36Alphabet[idx.Int64()]
	}

	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), suffix), nil
}
