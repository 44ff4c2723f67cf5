package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Alwanly/firebird-track/internal/models"
	"github.com/Alwanly/firebird-track/internal/server/receiver/dto"
	"github.com/Alwanly/firebird-track/pkg/pubsub"
)

type Repository struct {
	DB      *gorm.DB
	Pub     pubsub.Publisher
	Channel string
}

func NewRepository(db *gorm.DB, publisher pubsub.Publisher, channel string) *Repository {
	return &Repository{DB: db, Pub: publisher, Channel: channel}
}

type IRepository interface {
	SaveSubmission(ctx context.Context, sub *models.Submission) error
	ListSubmissions(ctx context.Context, projectID string, limit int) ([]models.Submission, error)
	PublishSubmissionSaved(ctx context.Context, sub *models.Submission) error
}

// SaveSubmission stores the submission and its params in one transaction.
// An empty ID is replaced with a UUID v7.
func (r *Repository) SaveSubmission(ctx context.Context, sub *models.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.Must(uuid.NewV7()).String()
	}
	sub.ParamCount = len(sub.Params)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sub).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// ListSubmissions returns the newest submissions first, params in received order.
func (r *Repository) ListSubmissions(ctx context.Context, projectID string, limit int) ([]models.Submission, error) {
	q := r.DB.WithContext(ctx).
		Preload("Params", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit)
	if projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var subs []models.Submission
	if err := q.Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	return subs, nil
}

// PublishSubmissionSaved is a no-op when no publisher is configured.
func (r *Repository) PublishSubmissionSaved(ctx context.Context, sub *models.Submission) error {
	if r.Pub == nil {
		return nil
	}

	names := make([]string, 0, len(sub.Params))
	for _, p := range sub.Params {
		names = append(names, p.Name)
	}

	payload, err := json.Marshal(dto.SubmissionSavedEvent{
		SubmissionID: sub.ID,
		ProjectID:    sub.ProjectID,
		APIVersion:   sub.APIVersion,
		ParamNames:   names,
		SavedAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal submission event: %w", err)
	}

	if err := r.Pub.Publish(ctx, r.Channel, string(payload)); err != nil {
		return fmt.Errorf("failed to publish submission event: %w", err)
	}
	return nil
}
