package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
	"teamlab/internal/repository"
	"teamlab/pkg/log"
)

type CourseService interface {
	CreateCourse(ctx context.Context, teacherId string, req *v1.CreateCourseRequest) (*v1.CourseData, error)
	UpdateCourse(ctx context.Context, teacherId string, courseId int64, req *v1.UpdateCourseRequest) error
	GetCourse(ctx context.Context, courseId int64) (*v1.CourseData, error)
	ListCourses(ctx context.Context) ([]*v1.CourseData, error)
	Enroll(ctx context.Context, teacherId string, courseId int64, studentId string) error
	// EnrollCSV enrolls students listed one email per record; the first record
	// is a header. Row failures are reported, not fatal.
	EnrollCSV(ctx context.Context, teacherId string, courseId int64, r io.Reader) (*v1.EnrollCSVResponseData, error)
}

func NewCourseService(
	service *Service,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	logger *log.Logger,
) CourseService {
	return &courseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
		Service:    service,
		logger:     logger,
	}
}

type courseService struct {
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	*Service
	logger *log.Logger
}

func (s *courseService) CreateCourse(ctx context.Context, teacherId string, req *v1.CreateCourseRequest) (*v1.CourseData, error) {
	teacher, err := s.userRepo.GetByID(ctx, teacherId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if teacher == nil || teacher.Role != model.RoleTeacher {
		return nil, v1.ErrNotCourseTeacher
	}
	if req.MinTeamSize > req.MaxTeamSize {
		return nil, v1.ErrBadRequest
	}
	if existing, err := s.courseRepo.GetByName(ctx, req.Name); err != nil {
		return nil, v1.ErrInternalServerError
	} else if existing != nil {
		return nil, v1.ErrBadRequest
	}

	course := &model.Course{
		Name:            req.Name,
		TeacherId:       teacherId,
		Enabled:         true,
		MinTeamSize:     req.MinTeamSize,
		MaxTeamSize:     req.MaxTeamSize,
		CpuMax:          req.CpuMax,
		RamMax:          req.RamMax,
		DiskSpaceMax:    req.DiskSpaceMax,
		TotalInstances:  req.TotalInstances,
		ActiveInstances: req.ActiveInstances,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		s.logger.WithContext(ctx).Error("courseRepo.Create error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	return s.courseData(course), nil
}

// UpdateCourse edits bounds, template or the enabled flag. Teams already
// proposed keep their snapshot of the old template.
func (s *courseService) UpdateCourse(ctx context.Context, teacherId string, courseId int64, req *v1.UpdateCourseRequest) error {
	course, err := s.guardTeacher(ctx, teacherId, courseId)
	if err != nil {
		return err
	}

	if req.Enabled != nil {
		course.Enabled = *req.Enabled
	}
	if req.MinTeamSize != nil {
		course.MinTeamSize = *req.MinTeamSize
	}
	if req.MaxTeamSize != nil {
		course.MaxTeamSize = *req.MaxTeamSize
	}
	if req.CpuMax != nil {
		course.CpuMax = *req.CpuMax
	}
	if req.RamMax != nil {
		course.RamMax = *req.RamMax
	}
	if req.DiskSpaceMax != nil {
		course.DiskSpaceMax = *req.DiskSpaceMax
	}
	if req.TotalInstances != nil {
		course.TotalInstances = *req.TotalInstances
	}
	if req.ActiveInstances != nil {
		course.ActiveInstances = *req.ActiveInstances
	}
	if course.MinTeamSize > course.MaxTeamSize {
		return v1.ErrBadRequest
	}
	if err := s.courseRepo.Update(ctx, course); err != nil {
		s.logger.WithContext(ctx).Error("courseRepo.Update error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *courseService) GetCourse(ctx context.Context, courseId int64) (*v1.CourseData, error) {
	course, err := s.courseRepo.GetByID(ctx, courseId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if course == nil {
		return nil, v1.ErrCourseNotFound
	}
	return s.courseData(course), nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]*v1.CourseData, error) {
	courses, err := s.courseRepo.List(ctx)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	out := make([]*v1.CourseData, 0, len(courses))
	for _, c := range courses {
		out = append(out, s.courseData(c))
	}
	return out, nil
}

func (s *courseService) Enroll(ctx context.Context, teacherId string, courseId int64, studentId string) error {
	course, err := s.guardTeacher(ctx, teacherId, courseId)
	if err != nil {
		return err
	}
	student, err := s.userRepo.GetByID(ctx, studentId)
	if err != nil {
		return v1.ErrInternalServerError
	}
	if student == nil || student.Role != model.RoleStudent {
		return v1.ErrStudentNotFound
	}
	enrolled, err := s.courseRepo.IsEnrolled(ctx, course.Id, studentId)
	if err != nil {
		return v1.ErrInternalServerError
	}
	if enrolled {
		return v1.ErrAlreadyEnrolled
	}
	if err := s.courseRepo.Enroll(ctx, &model.Enrollment{CourseId: course.Id, StudentId: studentId}); err != nil {
		s.logger.WithContext(ctx).Error("courseRepo.Enroll error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	return nil
}

func (s *courseService) EnrollCSV(ctx context.Context, teacherId string, courseId int64, r io.Reader) (*v1.EnrollCSVResponseData, error) {
	if _, err := s.guardTeacher(ctx, teacherId, courseId); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	out := &v1.EnrollCSVResponseData{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			out.Rows = append(out.Rows, v1.EnrollCSVResultRow{Line: line, Ok: false, Error: err.Error()})
			continue
		}
		if line == 1 {
			// header
			continue
		}
		if len(record) == 0 {
			continue
		}
		email := strings.TrimSpace(record[0])
		if email == "" {
			continue
		}
		row := v1.EnrollCSVResultRow{Line: line, Email: email}
		student, err := s.userRepo.GetByEmail(ctx, email)
		switch {
		case err != nil:
			row.Error = v1.ErrInternalServerError.Error()
		case student == nil || student.Role != model.RoleStudent:
			row.Error = v1.ErrStudentNotFound.Error()
		default:
			enrolled, err := s.courseRepo.IsEnrolled(ctx, courseId, student.UserId)
			if err != nil {
				row.Error = v1.ErrInternalServerError.Error()
			} else if enrolled {
				row.Error = v1.ErrAlreadyEnrolled.Error()
			} else if err := s.courseRepo.Enroll(ctx, &model.Enrollment{CourseId: courseId, StudentId: student.UserId}); err != nil {
				row.Error = v1.ErrInternalServerError.Error()
			} else {
				row.Ok = true
				out.Enrolled++
			}
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func (s *courseService) guardTeacher(ctx context.Context, teacherId string, courseId int64) (*model.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, courseId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if course == nil {
		return nil, v1.ErrCourseNotFound
	}
	if course.TeacherId != teacherId {
		return nil, v1.ErrNotCourseTeacher
	}
	return course, nil
}

func (s *courseService) courseData(course *model.Course) *v1.CourseData {
	return &v1.CourseData{
		Id:              course.Id,
		Name:            course.Name,
		TeacherId:       course.TeacherId,
		Enabled:         course.Enabled,
		MinTeamSize:     course.MinTeamSize,
		MaxTeamSize:     course.MaxTeamSize,
		CpuMax:          course.CpuMax,
		RamMax:          course.RamMax,
		DiskSpaceMax:    course.DiskSpaceMax,
		TotalInstances:  course.TotalInstances,
		ActiveInstances: course.ActiveInstances,
	}
}
