package handler

import (
	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	"github.com/gofiber/fiber/v2"
)

const sessionLocalKey = "session"

// RequireSession resolves the session cookie and stores the live session in
// c.Locals for the handlers behind it.
func (h *RecruitmentHandler) RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := h.sessionService.Resolve(c.UserContext(), c.Cookies(SessionCookieName))
		if err != nil {
			return err
		}
		c.Locals(sessionLocalKey, session)
		return c.Next()
	}
}

// RequireRole must be mounted after RequireSession.
func (h *RecruitmentHandler) RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := currentSession(c)
		if session == nil {
			return apperrors.ErrMissingSession
		}
		if session.Role != role {
			return apperrors.ErrAccessDenied
		}
		return c.Next()
	}
}

func currentSession(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(sessionLocalKey).(*domain.Session)
	return session
}
