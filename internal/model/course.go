package model

import (
	"time"
)

// Course carries the team size bounds and the VM resource template that is
// copied into every team at proposal time. Editing the template afterwards
// never touches already-created teams.
type Course struct {
	Id          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"column:name;unique;not null"`
	TeacherId   string    `json:"teacher_id" gorm:"column:teacher_id;index"`
	Enabled     bool      `json:"enabled" gorm:"column:enabled;default:true"`
	MinTeamSize int       `json:"min_team_size" gorm:"column:min_team_size;default:1"`
	MaxTeamSize int       `json:"max_team_size" gorm:"column:max_team_size;default:4"`

	// VM template, per team
	CpuMax          int `json:"cpu_max" gorm:"column:cpu_max;default:0"`
	RamMax          int `json:"ram_max" gorm:"column:ram_max;default:0"`                   // MB
	DiskSpaceMax    int `json:"disk_space_max" gorm:"column:disk_space_max;default:0"`     // GB
	TotalInstances  int `json:"total_instances" gorm:"column:total_instances;default:0"`   // max VMs per team
	ActiveInstances int `json:"active_instances" gorm:"column:active_instances;default:0"` // max running VMs per team

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Course) TableName() string {
	return "course"
}

// Enrollment links a student to a course.
type Enrollment struct {
	Id         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CourseId   int64     `json:"course_id" gorm:"column:course_id;index:idx_enrollment_course_student,unique"`
	StudentId  string    `json:"student_id" gorm:"column:student_id;index:idx_enrollment_course_student,unique"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
}

func (Enrollment) TableName() string {
	return "enrollment"
}
