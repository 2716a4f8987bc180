// Package auth provides credential checks and session handling for the
// finboard API. Users authenticate against the users table with bcrypt;
// a signed cookie session carries the user id between requests.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/finboardhq/finboard/internal/apperrors"
	"github.com/finboardhq/finboard/internal/config"
	"github.com/finboardhq/finboard/internal/models"
	"github.com/finboardhq/finboard/internal/repository"
	"github.com/finboardhq/finboard/internal/utils"
)

// Session keys.
const (
	sessionName    = "finboard_session"
	sessionUserKey = "user_id"
	sessionMaxAge  = 86400
)

// Service implements login, logout and the session guard middleware.
type Service struct {
	users repository.UserRepository
	store cookie.Store
}

// NewService creates the auth service with a cookie-backed session store.
func NewService(cfg config.AuthConfig, environment string, users repository.UserRepository) *Service {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		Domain:   cfg.CookieDomain,
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   environment == "production",
		SameSite: parseSameSite(cfg.CookieSameSite),
	})

	return &Service{
		users: users,
		store: store,
	}
}

// SessionMiddleware attaches the session store to every request.
// It must be registered before any handler that reads the session.
func (s *Service) SessionMiddleware() gin.HandlerFunc {
	return sessions.Sessions(sessionName, s.store)
}

// Middleware rejects requests without an authenticated session.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserKey) == nil {
			utils.ProblemAuthentication(c, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Login verifies the credentials against the users table. Unknown emails
// and wrong passwords produce the same error so the response does not leak
// which part failed.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("Invalid credentials.").Wrap(err)
		}
		return nil, apperrors.Database("Failed to fetch user.").
			Wrap(err).
			WithInternal("Auth.Login: email=%s", email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials.").Wrap(err)
	}

	return user, nil
}

// StartSession stores the user id in the request's session cookie.
func (s *Service) StartSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}

// EndSession clears the session cookie.
func (s *Service) EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// parseSameSite maps the configured cookie policy onto http.SameSite.
func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
