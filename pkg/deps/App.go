package deps

import (
	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/Alwanly/firebird-track/pkg/middleware"
	"github.com/Alwanly/firebird-track/pkg/pubsub"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type App struct {
	Fiber      *fiber.App
	Logger     *logger.CanonicalLogger
	Database   *gorm.DB
	Middleware *middleware.AuthMiddleware
	Pub        pubsub.Publisher
}
