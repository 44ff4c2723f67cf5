package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Alwanly/firebird-track/internal/config"
	"github.com/Alwanly/firebird-track/internal/server/receiver/dto"
	"github.com/Alwanly/firebird-track/internal/server/receiver/repository"
	"github.com/Alwanly/firebird-track/internal/server/receiver/usecase"
	"github.com/Alwanly/firebird-track/pkg/deps"
	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/Alwanly/firebird-track/pkg/middleware"
	"github.com/Alwanly/firebird-track/pkg/wrapper"
)

type Handler struct {
	Logger  *logger.CanonicalLogger
	UseCase usecase.UseCaseInterface
	Config  *config.ReceiverConfig
}

func NewHandler(d deps.App, cfg *config.ReceiverConfig) *Handler {
	repo := repository.NewRepository(d.Database, d.Pub, cfg.EventChannel)

	uc := usecase.NewUseCase(usecase.UseCase{
		Repo:   repo,
		Config: cfg,
		Logger: d.Logger,
	})

	h := &Handler{
		Logger:  d.Logger,
		UseCase: uc,
		Config:  cfg,
	}

	d.Fiber.Get("/health", h.health)

	d.Fiber.Post("/firebird/telcom/:version/save-user-details",
		middleware.ProjectIDAuth(cfg.AllowedProjectIDs, d.Logger),
		h.saveUserDetails,
	)

	d.Fiber.Get("/submissions", d.Middleware.BasicAuthAdmin(), h.listSubmissions)

	return h
}

// health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Router       /health [get]
func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "healthy", Service: "receiver"})
}

// saveUserDetails godoc
// @Summary      Save user details
// @Description  Store an ordered list of typed user attributes for a project
// @Tags         user-details
// @Accept       json
// @Produce      json
// @Param        version   path    string                 true "API version" default(v1)
// @Param        projectId header  string                 true "Project identifier"
// @Param        request   body    []dto.UserDetailParam  true "User attributes"
// @Success      200 {object} wrapper.JSONResult{data=dto.SaveUserDetailsResponse}
// @Failure      400 {object} wrapper.JSONResult "Invalid body or attribute"
// @Failure      401 {object} wrapper.JSONResult "Missing projectId header"
// @Failure      403 {object} wrapper.JSONResult "Unknown project id"
// @Failure      500 {object} wrapper.JSONResult "Internal server error"
// @Router       /firebird/telcom/{version}/save-user-details [post]
func (h *Handler) saveUserDetails(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(),
		logger.String(logger.FieldOperation, "save_user_details"),
		logger.String(logger.FieldAPIVersion, c.Params("version")),
	)

	req := &dto.SaveUserDetailsRequest{
		ProjectID: c.Locals(middleware.ProjectIDContextKey).(string),
		Version:   c.Params("version"),
	}
	if err := c.BodyParser(&req.Params); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(wrapper.ResponseFailed(http.StatusBadRequest, "Invalid request body", nil))
	}

	res := h.UseCase.SaveUserDetails(c.UserContext(), req)

	return c.Status(res.Code).JSON(res)
}

// listSubmissions godoc
// @Summary      List received submissions
// @Description  Newest first, optionally filtered by project (admin only)
// @Tags         user-details
// @Produce      json
// @Param        projectId query string false "Project identifier"
// @Param        limit     query int    false "Maximum number of submissions" default(20)
// @Success      200 {object} wrapper.JSONResult{data=dto.ListSubmissionsResponse}
// @Failure      400 {object} wrapper.JSONResult
// @Failure      401 {object} wrapper.JSONResult
// @Router       /submissions [get]
// @Security     BasicAuth
func (h *Handler) listSubmissions(c *fiber.Ctx) error {
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldOperation, "list_submissions"))

	req := new(dto.ListSubmissionsRequest)
	if err := c.QueryParser(req); err != nil {
		logger.AddToContext(c.UserContext(), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(wrapper.ResponseFailed(http.StatusBadRequest, "Invalid query", nil))
	}

	res := h.UseCase.ListSubmissions(c.UserContext(), req)

	return c.Status(res.Code).JSON(res)
}
