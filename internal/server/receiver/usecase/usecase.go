package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Alwanly/firebird-track/internal/config"
	"github.com/Alwanly/firebird-track/internal/models"
	"github.com/Alwanly/firebird-track/internal/server/receiver/dto"
	"github.com/Alwanly/firebird-track/internal/server/receiver/repository"
	"github.com/Alwanly/firebird-track/pkg/firebird"
	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/Alwanly/firebird-track/pkg/validator"
	"github.com/Alwanly/firebird-track/pkg/wrapper"
)

type UseCase struct {
	Repo   repository.IRepository
	Config *config.ReceiverConfig
	Logger *logger.CanonicalLogger
}

type UseCaseInterface interface {
	SaveUserDetails(ctx context.Context, req *dto.SaveUserDetailsRequest) wrapper.JSONResult
	ListSubmissions(ctx context.Context, req *dto.ListSubmissionsRequest) wrapper.JSONResult
}

func NewUseCase(uc UseCase) *UseCase {
	if uc.Logger == nil {
		uc.Logger = logger.NewNop()
	}
	return &uc
}

func (uc *UseCase) SaveUserDetails(ctx context.Context, req *dto.SaveUserDetailsRequest) wrapper.JSONResult {
	if err := validator.ValidateStruct(req); err != nil {
		logger.AddToContext(ctx, zap.Error(err))
		return wrapper.ResponseFailed(http.StatusBadRequest, "invalid user details", validator.TranslateError(err))
	}

	sub := &models.Submission{
		ProjectID:  req.ProjectID,
		APIVersion: req.Version,
		Params:     make([]models.SubmissionParam, 0, len(req.Params)),
	}
	for i, p := range req.Params {
		if err := checkWellKnownField(p); err != nil {
			logger.AddToContext(ctx, zap.String(logger.FieldRejectedField, p.ParamName), zap.Error(err))
			return wrapper.ResponseFailed(http.StatusBadRequest, err.Error(), map[string]string{p.ParamName: err.Error()})
		}

		value := p.ParamValue
		if len(value) == 0 {
			value = json.RawMessage("null")
		}
		sub.Params = append(sub.Params, models.SubmissionParam{
			Position: i,
			Name:     p.ParamName,
			Value:    value,
			DataType: p.ParamDatatype,
		})
	}

	if err := uc.Repo.SaveSubmission(ctx, sub); err != nil {
		uc.Logger.WithError(err).Error("failed to save user details", logger.String(logger.FieldProjectID, req.ProjectID))
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to save user details", nil)
	}

	logger.AddToContext(ctx,
		zap.String(logger.FieldSubmissionID, sub.ID),
		zap.Int(logger.FieldAttributeCount, len(sub.Params)),
		zap.Bool(logger.FieldSuccess, true),
	)

	if err := uc.Repo.PublishSubmissionSaved(ctx, sub); err != nil {
		// best effort, the submission is already stored
		uc.Logger.WithError(err).Error("failed to publish submission event",
			logger.String(logger.FieldSubmissionID, sub.ID),
		)
	}

	return wrapper.ResponseSuccess(http.StatusOK, dto.SaveUserDetailsResponse{
		SubmissionID: sub.ID,
		Accepted:     len(sub.Params),
	})
}

func (uc *UseCase) ListSubmissions(ctx context.Context, req *dto.ListSubmissionsRequest) wrapper.JSONResult {
	if err := validator.ValidateStruct(req); err != nil {
		return wrapper.ResponseFailed(http.StatusBadRequest, "invalid query", validator.TranslateError(err))
	}

	limit := req.Limit
	if limit == 0 {
		limit = dto.DefaultListLimit
	}

	subs, err := uc.Repo.ListSubmissions(ctx, req.ProjectID, limit)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to list submissions")
		return wrapper.ResponseFailed(http.StatusInternalServerError, "failed to list submissions", nil)
	}

	return wrapper.ResponseSuccess(http.StatusOK, dto.ListSubmissionsResponse{
		Submissions: subs,
		Count:       len(subs),
	})
}

var errNotAString = errors.New("must be a string value")

// checkWellKnownField re-applies the client side format rules to the
// well-known String params.
func checkWellKnownField(p dto.UserDetailParam) error {
	if !firebird.HasFieldRule(p.ParamName) {
		return nil
	}

	var s string
	if err := json.Unmarshal(p.ParamValue, &s); err != nil {
		return &firebird.FieldError{Field: p.ParamName, Reason: errNotAString.Error()}
	}
	return firebird.ValidateField(p.ParamName, s)
}
