package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"teamlab/internal/model"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.Assignment) error
	GetByID(ctx context.Context, id int64) (*model.Assignment, error)
	ListOverdue(ctx context.Context, now time.Time) ([]*model.Assignment, error)

	CreateDeliveries(ctx context.Context, deliveries []*model.Delivery) error
	UpdateDelivery(ctx context.Context, delivery *model.Delivery) error
	GetDelivery(ctx context.Context, assignmentId int64, studentId string) (*model.Delivery, error)
	ListOpenDeliveries(ctx context.Context, assignmentId int64) ([]*model.Delivery, error)
}

func NewAssignmentRepository(r *Repository) AssignmentRepository {
	return &assignmentRepository{Repository: r}
}

type assignmentRepository struct {
	*Repository
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	return r.DB(ctx).Create(assignment).Error
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.DB(ctx).Where("id = ?", id).First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) ListOverdue(ctx context.Context, now time.Time) ([]*model.Assignment, error) {
	var assignments []*model.Assignment
	if err := r.DB(ctx).Where("due_at < ?", now).Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) CreateDeliveries(ctx context.Context, deliveries []*model.Delivery) error {
	return r.DB(ctx).Create(deliveries).Error
}

func (r *assignmentRepository) UpdateDelivery(ctx context.Context, delivery *model.Delivery) error {
	return r.DB(ctx).Save(delivery).Error
}

func (r *assignmentRepository) GetDelivery(ctx context.Context, assignmentId int64, studentId string) (*model.Delivery, error) {
	var delivery model.Delivery
	err := r.DB(ctx).Where("assignment_id = ? AND student_id = ?", assignmentId, studentId).First(&delivery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *assignmentRepository) ListOpenDeliveries(ctx context.Context, assignmentId int64) ([]*model.Delivery, error) {
	var deliveries []*model.Delivery
	err := r.DB(ctx).
		Where("assignment_id = ? AND locked = ? AND status IN ?", assignmentId, false,
			[]string{model.DeliveryStatusDraft, model.DeliveryStatusRead}).
		Find(&deliveries).Error
	if err != nil {
		return nil, err
	}
	return deliveries, nil
}
