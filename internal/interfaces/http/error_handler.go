package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ecommerce-admin-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-admin-api/internal/domain"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/metrics"
)

// ErrorHandler traduce cualquier error de la cadena al sobre {statusCode, message, data:null}.
// Se instala como fiber.Config.ErrorHandler; los pánicos llegan aquí vía recover.New().
func ErrorHandler(log zerolog.Logger, rec *metrics.Recorder) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, kind, message := classify(err)

		ev := log.Warn()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Str("kind", kind.String()).
			Int("status", status).
			Msg(message)
		rec.CountFailure(kind.String())

		return c.Status(status).JSON(dto.Fail(status, message))
	}
}

func classify(err error) (int, domain.Kind, string) {
	var de *domain.Error
	if errors.As(err, &de) {
		return statusOf(de.Kind()), de.Kind(), de.Error()
	}

	// Errores propios de Fiber: ruta inexistente, cuerpo demasiado grande, etc.
	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusBadRequest:
			return fe.Code, domain.KindBadRequest, fe.Message
		case fiber.StatusUnauthorized:
			return fe.Code, domain.KindUnauthorized, fe.Message
		case fiber.StatusForbidden:
			return fe.Code, domain.KindForbidden, fe.Message
		case fiber.StatusNotFound:
			return fe.Code, domain.KindNotFound, fe.Message
		}
		return fiber.StatusInternalServerError, domain.KindInternal, fe.Message
	}

	return fiber.StatusInternalServerError, domain.KindInternal, err.Error()
}

func statusOf(k domain.Kind) int {
	switch k {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindBadRequest:
		return fiber.StatusBadRequest
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized
	case domain.KindForbidden:
		return fiber.StatusForbidden
	case domain.KindInternal:
		return fiber.StatusInternalServerError
	}
	return fiber.StatusInternalServerError
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}
