package dto

import "github.com/Alwanly/firebird-track/internal/models"

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListSubmissionsRequest filters the admin submissions listing
type ListSubmissionsRequest struct {
	ProjectID string `query:"projectId"`
	Limit     int    `query:"limit" validate:"gte=0,lte=100"`
}

// ListSubmissionsResponse wraps the listed submissions
type ListSubmissionsResponse struct {
	Submissions []models.Submission `json:"submissions"`
	Count       int                 `json:"count"`
}
