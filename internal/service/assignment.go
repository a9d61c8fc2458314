package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
	"teamlab/internal/repository"
	"teamlab/pkg/log"
)

type AssignmentService interface {
	CreateAssignment(ctx context.Context, teacherId string, req *v1.CreateAssignmentRequest) (*v1.AssignmentData, error)
	ReadDelivery(ctx context.Context, studentId string, assignmentId int64) (*v1.DeliveryData, error)
	SubmitDelivery(ctx context.Context, studentId string, assignmentId int64) (*v1.DeliveryData, error)
	// FinalizeOverdue closes every delivery still open on a past-due
	// assignment and locks it. Returns the number of deliveries finalized.
	FinalizeOverdue(ctx context.Context) (int, error)
}

func NewAssignmentService(
	service *Service,
	assignmentRepo repository.AssignmentRepository,
	courseRepo repository.CourseRepository,
	logger *log.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		courseRepo:     courseRepo,
		now:            time.Now,
		Service:        service,
		logger:         logger,
	}
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	courseRepo     repository.CourseRepository
	now            func() time.Time // injected clock, overridden in tests
	*Service
	logger *log.Logger
}

// CreateAssignment publishes an assignment and opens one draft delivery per
// enrolled student.
func (s *assignmentService) CreateAssignment(ctx context.Context, teacherId string, req *v1.CreateAssignmentRequest) (*v1.AssignmentData, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if course == nil {
		return nil, v1.ErrCourseNotFound
	}
	if course.TeacherId != teacherId {
		return nil, v1.ErrNotCourseTeacher
	}

	assignment := &model.Assignment{
		CourseId:    req.CourseId,
		Title:       req.Title,
		PublishedAt: s.now(),
		DueAt:       req.DueAt,
	}
	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
			return err
		}
		enrollments, err := s.courseRepo.ListEnrolled(ctx, req.CourseId)
		if err != nil {
			return err
		}
		if len(enrollments) == 0 {
			return nil
		}
		deliveries := make([]*model.Delivery, 0, len(enrollments))
		for _, e := range enrollments {
			deliveries = append(deliveries, &model.Delivery{
				AssignmentId: assignment.Id,
				StudentId:    e.StudentId,
				Status:       model.DeliveryStatusDraft,
			})
		}
		return s.assignmentRepo.CreateDeliveries(ctx, deliveries)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("create assignment tx error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return &v1.AssignmentData{
		Id:          assignment.Id,
		CourseId:    assignment.CourseId,
		Title:       assignment.Title,
		PublishedAt: assignment.PublishedAt,
		DueAt:       assignment.DueAt,
	}, nil
}

func (s *assignmentService) ReadDelivery(ctx context.Context, studentId string, assignmentId int64) (*v1.DeliveryData, error) {
	return s.transitionDelivery(ctx, studentId, assignmentId, model.DeliveryStatusRead)
}

func (s *assignmentService) SubmitDelivery(ctx context.Context, studentId string, assignmentId int64) (*v1.DeliveryData, error) {
	return s.transitionDelivery(ctx, studentId, assignmentId, model.DeliveryStatusSubmitted)
}

func (s *assignmentService) transitionDelivery(ctx context.Context, studentId string, assignmentId int64, status string) (*v1.DeliveryData, error) {
	delivery, err := s.assignmentRepo.GetDelivery(ctx, assignmentId, studentId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if delivery == nil {
		return nil, v1.ErrDeliveryNotFound
	}
	if delivery.Locked || delivery.Terminal() {
		return nil, v1.ErrDeliveryLocked
	}
	delivery.Status = status
	if err := s.assignmentRepo.UpdateDelivery(ctx, delivery); err != nil {
		s.logger.WithContext(ctx).Error("assignmentRepo.UpdateDelivery error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return s.deliveryData(delivery), nil
}

func (s *assignmentService) FinalizeOverdue(ctx context.Context) (int, error) {
	overdue, err := s.assignmentRepo.ListOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	finalized := 0
	for _, assignment := range overdue {
		n, err := s.finalizeAssignment(ctx, assignment.Id)
		if err != nil {
			// isolated per assignment, keep sweeping
			s.logger.WithContext(ctx).Error("finalize assignment failed", zap.Error(err), zap.Int64("assignment_id", assignment.Id))
			continue
		}
		finalized += n
	}
	return finalized, nil
}

func (s *assignmentService) finalizeAssignment(ctx context.Context, assignmentId int64) (int, error) {
	n := 0
	err := s.tm.Transaction(ctx, func(ctx context.Context) error {
		open, err := s.assignmentRepo.ListOpenDeliveries(ctx, assignmentId)
		if err != nil {
			return err
		}
		for _, delivery := range open {
			delivery.Status = model.DeliveryStatusSubmitted
			delivery.Locked = true
			if err := s.assignmentRepo.UpdateDelivery(ctx, delivery); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *assignmentService) deliveryData(d *model.Delivery) *v1.DeliveryData {
	return &v1.DeliveryData{
		Id:           d.Id,
		AssignmentId: d.AssignmentId,
		StudentId:    d.StudentId,
		Status:       d.Status,
		Locked:       d.Locked,
		UpdateTime:   d.UpdateTime,
	}
}
