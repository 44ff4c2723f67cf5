package dto

import (
	"encoding/json"
	"time"
)

// UserDetailParam is one element of the save-user-details JSON array
type UserDetailParam struct {
	ParamName     string          `json:"paramName" validate:"required" example:"firstName"`
	ParamValue    json.RawMessage `json:"paramValue" swaggertype:"object"`
	ParamDatatype string          `json:"paramDatatype" validate:"required,oneof=String int double boolean array" example:"String"`
}

// SaveUserDetailsRequest combines the request body with the path and header values
type SaveUserDetailsRequest struct {
	ProjectID string            `validate:"required"`
	Version   string            `validate:"required"`
	Params    []UserDetailParam `validate:"required,min=1,dive"`
}

// SaveUserDetailsResponse is the data returned after a submission is stored
type SaveUserDetailsResponse struct {
	SubmissionID string `json:"submissionId" example:"0190f1c2-7a7b-7c3e-9f5e-2d1b6f0a9c11"`
	Accepted     int    `json:"accepted" example:"2"`
}

// SubmissionSavedEvent is published after a submission is persisted
type SubmissionSavedEvent struct {
	SubmissionID string    `json:"submissionId"`
	ProjectID    string    `json:"projectId"`
	APIVersion   string    `json:"apiVersion"`
	ParamNames   []string  `json:"paramNames"`
	SavedAt      time.Time `json:"savedAt"`
}
