package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "session"

// Keys set on the gin context by RequireSession.
const (
	ContextUserID       = "userID"
	ContextUser         = "user"
	ContextSessionToken = "sessionToken"
)

// GuardMode selects how RequireSession rejects unauthenticated requests.
type GuardMode int

const (
	// GuardAPI aborts with a 401 JSON error.
	GuardAPI GuardMode = iota
	// GuardPage redirects the browser to the login page.
	GuardPage
)

// LoginPath is where GuardPage sends unauthenticated browsers.
const LoginPath = "/login"

// CookieConfig controls the attributes of the session cookie.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

// SetSessionCookie stores token in an HttpOnly, SameSite=Lax cookie.
func SetSessionCookie(c *gin.Context, cfg CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(cfg.MaxAge.Seconds()), "/", "", cfg.Secure, true)
}

// ClearSessionCookie expires the session cookie in the browser.
func ClearSessionCookie(c *gin.Context, cfg CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", cfg.Secure, true)
}

// SessionToken returns the token from the session cookie, falling back to
// an "Authorization: Bearer" header. It returns "" when neither is present.
func SessionToken(c *gin.Context) string {
	if token := cookieToken(c); token != "" {
		return token
	}
	return bearerToken(c)
}

func cookieToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// RequireSession resolves the session token to a user before any handler
// runs. The cookie is tried first; when it does not resolve, a Bearer token
// sent alongside it is tried next and the stale cookie is cleared. On
// success it sets ContextUserID, ContextUser and ContextSessionToken.
func RequireSession(sessions services.SessionServicer, mode GuardMode, cookies CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, bearer := cookieToken(c), bearerToken(c)

		token := cookie
		if token == "" {
			token = bearer
		}
		user, err := sessions.Resolve(token)
		if err != nil && cookie != "" && bearer != "" && bearer != cookie && !isInternal(err) {
			token = bearer
			if user, err = sessions.Resolve(token); err == nil {
				ClearSessionCookie(c, cookies)
			}
		}
		if err != nil {
			rejectSession(c, mode, cookies, cookie != "", err)
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Set(ContextSessionToken, token)
		c.Next()
	}
}

func isInternal(err error) bool {
	var appErr *apperrors.AppError
	return errors.As(err, &appErr) && appErr.StatusCode == http.StatusInternalServerError
}

func rejectSession(c *gin.Context, mode GuardMode, cookies CookieConfig, hadCookie bool, err error) {
	if isInternal(err) {
		WriteError(c, err)
		return
	}

	if hadCookie {
		ClearSessionCookie(c, cookies)
	}

	if mode == GuardPage {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}
	WriteError(c, apperrors.ErrUnauthorized)
}
