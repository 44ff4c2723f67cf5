package models

import (
	"encoding/json"
	"time"
)

// Submission is one accepted save-user-details call.
type Submission struct {
	ID         string            `gorm:"primaryKey;column:id" json:"id"`
	ProjectID  string            `gorm:"column:project_id;index;not null" json:"projectId"`
	APIVersion string            `gorm:"column:api_version;not null" json:"apiVersion"`
	ParamCount int               `gorm:"column:param_count" json:"paramCount"`
	Params     []SubmissionParam `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"params"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Submission) TableName() string {
	return "submissions"
}

// SubmissionParam keeps a single attribute in the order it was received.
type SubmissionParam struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	SubmissionID string          `gorm:"column:submission_id;index;not null" json:"-"`
	Position     int             `gorm:"column:position" json:"position"`
	Name         string          `gorm:"column:param_name;not null" json:"paramName"`
	Value        json.RawMessage `gorm:"column:param_value" json:"paramValue"`
	DataType     string          `gorm:"column:param_datatype;not null" json:"paramDatatype"`
}

func (SubmissionParam) TableName() string {
	return "submission_params"
}
