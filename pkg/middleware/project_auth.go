package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/Alwanly/firebird-track/pkg/wrapper"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	ProjectIDHeader     = "projectId"
	ProjectIDContextKey = "project_id"
)

// ProjectIDAuth requires a projectId header. When allowed is non-empty the
// trimmed value must be one of its entries.
func ProjectIDAuth(allowed []string, log *logger.CanonicalLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID := strings.TrimSpace(c.Get(ProjectIDHeader))
		if projectID == "" {
			log.Debug("missing project id header",
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(wrapper.ResponseFailed(http.StatusUnauthorized, "missing projectId header", nil))
		}

		if len(allowed) > 0 && !slices.Contains(allowed, projectID) {
			log.Debug("unknown project id",
				zap.String(logger.FieldProjectID, projectID),
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusForbidden).JSON(wrapper.ResponseFailed(http.StatusForbidden, "unknown project id", nil))
		}

		c.Locals(ProjectIDContextKey, projectID)
		logger.AddToContext(c.UserContext(), zap.String(logger.FieldProjectID, projectID))

		return c.Next()
	}
}
