package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"teamlab/internal/model"
)

type ConfirmationTokenRepository interface {
	Create(ctx context.Context, tokens []*model.ConfirmationToken) error
	GetByID(ctx context.Context, id string) (*model.ConfirmationToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByTeamID(ctx context.Context, teamId int64) error
	ListByTeamID(ctx context.Context, teamId int64) ([]*model.ConfirmationToken, error)
	ListExpired(ctx context.Context, now time.Time) ([]*model.ConfirmationToken, error)
}

func NewConfirmationTokenRepository(r *Repository) ConfirmationTokenRepository {
	return &confirmationTokenRepository{Repository: r}
}

type confirmationTokenRepository struct {
	*Repository
}

func (r *confirmationTokenRepository) Create(ctx context.Context, tokens []*model.ConfirmationToken) error {
	return r.DB(ctx).Create(tokens).Error
}

func (r *confirmationTokenRepository) GetByID(ctx context.Context, id string) (*model.ConfirmationToken, error) {
	var token model.ConfirmationToken
	if err := r.DB(ctx).Where("id = ?", id).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

func (r *confirmationTokenRepository) DeleteByID(ctx context.Context, id string) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.ConfirmationToken{}).Error
}

func (r *confirmationTokenRepository) DeleteByTeamID(ctx context.Context, teamId int64) error {
	return r.DB(ctx).Where("team_id = ?", teamId).Delete(&model.ConfirmationToken{}).Error
}

func (r *confirmationTokenRepository) ListByTeamID(ctx context.Context, teamId int64) ([]*model.ConfirmationToken, error) {
	var tokens []*model.ConfirmationToken
	if err := r.DB(ctx).Where("team_id = ?", teamId).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *confirmationTokenRepository) ListExpired(ctx context.Context, now time.Time) ([]*model.ConfirmationToken, error) {
	var tokens []*model.ConfirmationToken
	if err := r.DB(ctx).Where("expires_at < ?", now).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}
