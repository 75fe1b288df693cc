// File path: internal/api/session.go
package api

import (
	"context"
	"net/http"

	"github.com/immensecng/cylinder-retest/internal/common"
	"github.com/immensecng/cylinder-retest/internal/common/telemetry"
	"github.com/immensecng/cylinder-retest/internal/session"
)

type sessionKey struct{}

// withSession resolves the visitor's session from the cookie, issuing a new
// one when the cookie is missing or names an expired session.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			id = cookie.Value
		}
		sess, created := s.sessions.Resolve(id)
		if created {
			telemetry.RecordSessionCreated()
			common.Logger().Debug("api: session created", "session", sess.ID(), "replaced", id != "")
		}
		if sess.ID() != id {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID(),
				Path:     "/",
				HttpOnly: true,
				Secure:   s.config.SecureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*session.Session)
	return sess
}
