package server

import (
	"errors"
	"log/slog"

	"commune/internal/middleware"
	"commune/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID returns the authenticated principal's id. Handlers behind the
// auth middleware may assume it is always present.
func currentUserID(c *fiber.Ctx) primitive.ObjectID {
	return c.Locals(middleware.UserIDLocal).(primitive.ObjectID)
}

// statusForCode maps domain error codes to HTTP statuses. Ownership
// violations map to 401 rather than 403 to preserve the wire contract of the
// original API; the FORBIDDEN code in the body disambiguates.
func statusForCode(code string) int {
	switch code {
	case models.CodeValidation, models.CodeInvalidCredentials,
		models.CodeAlreadyLiked, models.CodeNotLiked:
		return fiber.StatusBadRequest
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeUnauthenticated, models.CodeInvalidToken, models.CodeForbidden:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondServiceError maps a service error onto the HTTP response. Domain
// errors keep their code and message; anything unanticipated is logged and
// surfaced as a generic internal error.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code != models.CodeInternal {
		return models.RespondWithError(c, statusForCode(appErr.Code), appErr)
	}

	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
		slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}
