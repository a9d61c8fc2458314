package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teamlab/internal/model"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Update(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id int64) (*model.Course, error)
	GetByName(ctx context.Context, name string) (*model.Course, error)
	List(ctx context.Context) ([]*model.Course, error)
	Enroll(ctx context.Context, enrollment *model.Enrollment) error
	IsEnrolled(ctx context.Context, courseId int64, studentId string) (bool, error)
	ListEnrolled(ctx context.Context, courseId int64) ([]*model.Enrollment, error)
}

func NewCourseRepository(r *Repository) CourseRepository {
	return &courseRepository{Repository: r}
}

type courseRepository struct {
	*Repository
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB(ctx).Create(course).Error
}

func (r *courseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.DB(ctx).Save(course).Error
}

func (r *courseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	var course model.Course
	if err := r.DB(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) GetByName(ctx context.Context, name string) (*model.Course, error) {
	var course model.Course
	if err := r.DB(ctx).Where("name = ?", name).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context) ([]*model.Course, error) {
	var courses []*model.Course
	if err := r.DB(ctx).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) Enroll(ctx context.Context, enrollment *model.Enrollment) error {
	return r.DB(ctx).Create(enrollment).Error
}

func (r *courseRepository) IsEnrolled(ctx context.Context, courseId int64, studentId string) (bool, error) {
	var count int64
	err := r.DB(ctx).Model(&model.Enrollment{}).
		Where("course_id = ? AND student_id = ?", courseId, studentId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *courseRepository) ListEnrolled(ctx context.Context, courseId int64) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment
	if err := r.DB(ctx).Where("course_id = ?", courseId).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}
