package model

import (
	"time"
)

const (
	TeamStatusPending = "pending" // waiting for member confirmations
	TeamStatusActive  = "active"  // all members confirmed, quota enforced
)

// Team resource caps are a snapshot of the course template taken at proposal
// time. PendingCount is the number of confirmations still outstanding; it is
// meaningful only while Status is pending.
type Team struct {
	Id           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"column:name;index:idx_team_course_name,unique"`
	CourseId     int64  `json:"course_id" gorm:"column:course_id;index:idx_team_course_name,unique"`
	Status       string `json:"status" gorm:"column:status;default:pending"`
	PendingCount int    `json:"pending_count" gorm:"column:pending_count;default:0"`

	CpuMax       int `json:"cpu_max" gorm:"column:cpu_max"`
	RamMax       int `json:"ram_max" gorm:"column:ram_max"`             // MB
	DiskSpaceMax int `json:"disk_space_max" gorm:"column:disk_space_max"` // GB
	TotVM        int `json:"tot_vm" gorm:"column:tot_vm"`
	ActiveVM     int `json:"active_vm" gorm:"column:active_vm"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Team) TableName() string {
	return "team"
}

// TeamMember carries the course id redundantly so "student already teamed in
// this course" is a single indexed lookup.
type TeamMember struct {
	Id         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	TeamId     int64     `json:"team_id" gorm:"column:team_id;index"`
	CourseId   int64     `json:"course_id" gorm:"column:course_id;index:idx_member_course_student"`
	StudentId  string    `json:"student_id" gorm:"column:student_id;index:idx_member_course_student"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_member"
}
