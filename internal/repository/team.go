package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teamlab/internal/model"
)

type TeamRepository interface {
	Create(ctx context.Context, team *model.Team) error
	Update(ctx context.Context, team *model.Team) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.Team, error)
	GetByCourseAndName(ctx context.Context, courseId int64, name string) (*model.Team, error)
	ListByCourse(ctx context.Context, courseId int64) ([]*model.Team, error)

	CreateMembers(ctx context.Context, members []*model.TeamMember) error
	DeleteMembers(ctx context.Context, teamId int64) error
	ListMembers(ctx context.Context, teamId int64) ([]*model.TeamMember, error)
	IsMember(ctx context.Context, teamId int64, studentId string) (bool, error)
	// GetMemberTeam returns the team of a student in a course, pending or
	// active, or (nil, nil) if the student is unteamed there.
	GetMemberTeam(ctx context.Context, courseId int64, studentId string) (*model.Team, error)
}

func NewTeamRepository(r *Repository) TeamRepository {
	return &teamRepository{Repository: r}
}

type teamRepository struct {
	*Repository
}

func (r *teamRepository) Create(ctx context.Context, team *model.Team) error {
	return r.DB(ctx).Create(team).Error
}

func (r *teamRepository) Update(ctx context.Context, team *model.Team) error {
	return r.DB(ctx).Save(team).Error
}

func (r *teamRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.Team{}).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	var team model.Team
	if err := r.DB(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetByCourseAndName(ctx context.Context, courseId int64, name string) (*model.Team, error) {
	var team model.Team
	if err := r.DB(ctx).Where("course_id = ? AND name = ?", courseId, name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByCourse(ctx context.Context, courseId int64) ([]*model.Team, error) {
	var teams []*model.Team
	if err := r.DB(ctx).Where("course_id = ?", courseId).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) CreateMembers(ctx context.Context, members []*model.TeamMember) error {
	return r.DB(ctx).Create(members).Error
}

func (r *teamRepository) DeleteMembers(ctx context.Context, teamId int64) error {
	return r.DB(ctx).Where("team_id = ?", teamId).Delete(&model.TeamMember{}).Error
}

func (r *teamRepository) ListMembers(ctx context.Context, teamId int64) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	if err := r.DB(ctx).Where("team_id = ?", teamId).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamRepository) IsMember(ctx context.Context, teamId int64, studentId string) (bool, error) {
	var count int64
	err := r.DB(ctx).Model(&model.TeamMember{}).
		Where("team_id = ? AND student_id = ?", teamId, studentId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *teamRepository) GetMemberTeam(ctx context.Context, courseId int64, studentId string) (*model.Team, error) {
	var member model.TeamMember
	err := r.DB(ctx).Where("course_id = ? AND student_id = ?", courseId, studentId).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, member.TeamId)
}
