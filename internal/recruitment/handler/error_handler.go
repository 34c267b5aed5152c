package handler

import (
	"errors"

	apperrors "github.com/gohire/recruitment-service/internal/errors"
	"github.com/gohire/recruitment-service/internal/logger"
	"github.com/gohire/recruitment-service/internal/recruitment/domain"
	"github.com/gohire/recruitment-service/internal/recruitment/dto"
	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "Operation failed due to an internal server error."

var sentinelMappings = []struct {
	err    error
	status int
	kind   apperrors.ErrorType
}{
	{apperrors.ErrUsernameAlreadyExists, fiber.StatusConflict, apperrors.TypeUsernameAlreadyExists},
	{apperrors.ErrInvalidCredentials, fiber.StatusUnauthorized, apperrors.TypeLoginFail},
	{apperrors.ErrMissingSession, fiber.StatusUnauthorized, apperrors.TypeInsufficientCredentials},
	{apperrors.ErrAccessDenied, fiber.StatusForbidden, apperrors.TypeAccessDenied},
	{apperrors.ErrReauthenticationFailed, fiber.StatusUnauthorized, apperrors.TypeAuthenticationFail},
	{apperrors.ErrApplicationAlreadyHandled, fiber.StatusForbidden, apperrors.TypeApplicationAlreadyHandled},
	{apperrors.ErrApplicantNotFound, fiber.StatusNotFound, apperrors.TypeApplicantNotFound},
}

// NewErrorHandler translates every error returned by a handler or middleware
// into exactly one response. Unclassified errors are written to the error
// log before the generic 500 is sent.
func NewErrorHandler(events domain.EventLogger, log logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var loggingErr *apperrors.LoggingError
		if errors.As(err, &loggingErr) {
			log.WithError(err).Error("event log write failed", map[string]interface{}{
				"path":  loggingErr.Path,
				"route": c.Path(),
			})
			// SendStatus would fill the body with the status text.
			c.Response().ResetBody()
			c.Status(fiber.StatusInternalServerError)
			return nil
		}

		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			return writeError(c, fiber.StatusBadRequest, apperrors.TypeUserInputError, validationErr.Error())
		}

		for _, m := range sentinelMappings {
			if errors.Is(err, m.err) {
				return writeError(c, m.status, m.kind, m.err.Error())
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) &&
			(fiberErr.Code == fiber.StatusNotFound || fiberErr.Code == fiber.StatusMethodNotAllowed) {
			return writeError(c, fiber.StatusNotFound, apperrors.TypePageDoesNotExist, "Page "+c.Path()+" does not exist.")
		}

		if logErr := events.LogError(err); logErr != nil {
			log.WithError(logErr).Error("failed to write error log", map[string]interface{}{
				"original_error": err.Error(),
			})
		}
		log.WithError(err).Error("unhandled request error", map[string]interface{}{
			"method": c.Method(),
			"route":  c.Path(),
		})
		return writeError(c, fiber.StatusInternalServerError, apperrors.TypeServerInternal, internalErrorMessage)
	}
}

func writeError(c *fiber.Ctx, status int, kind apperrors.ErrorType, message string) error {
	return c.Status(status).JSON(dto.ErrorOutput{ErrorType: string(kind), Message: message})
}
