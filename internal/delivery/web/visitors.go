package web

import (
	"net/http"
	"sync"

	"standeal-backend/pkg/leadform"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie       = "standeal_visitor"
	visitorCookieMaxAge = 30 * 24 * 60 * 60
)

// visitorSessions hands out one leadform.Session per visitor while that
// visitor has a request in progress, so a second submit of the same form is
// refused until the first one returns. Idle visitors hold no memory.
type visitorSessions struct {
	mu       sync.Mutex
	sessions map[string]*visitorSession
}

type visitorSession struct {
	session *leadform.Session
	users   int
}

func newVisitorSessions() *visitorSessions {
	return &visitorSessions{sessions: make(map[string]*visitorSession)}
}

func (v *visitorSessions) acquire(id string) *leadform.Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	entry, ok := v.sessions[id]
	if !ok {
		entry = &visitorSession{session: leadform.NewSession()}
		v.sessions[id] = entry
	}
	entry.users++
	return entry.session
}

func (v *visitorSessions) release(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	entry, ok := v.sessions[id]
	if !ok {
		return
	}
	entry.users--
	if entry.users <= 0 {
		delete(v.sessions, id)
	}
}

func (v *visitorSessions) active() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.sessions)
}

// visitorKey identifies the visitor by cookie, issuing one when absent or
// malformed. A request that arrived without the cookie is keyed by its address
// so back-to-back posts from a fresh browser still share a session.
func visitorKey(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(visitorCookie, uuid.NewString(), visitorCookieMaxAge, "/", "", false, true)
	return "ip:" + c.ClientIP()
}
