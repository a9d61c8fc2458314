package model

import (
	"time"
)

const (
	DeliveryStatusDraft     = "draft"
	DeliveryStatusRead      = "read"
	DeliveryStatusSubmitted = "submitted"
	DeliveryStatusGraded    = "graded"
)

type Assignment struct {
	Id          int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CourseId    int64     `json:"course_id" gorm:"column:course_id;index"`
	Title       string    `json:"title" gorm:"column:title"`
	PublishedAt time.Time `json:"published_at" gorm:"column:published_at"`
	DueAt       time.Time `json:"due_at" gorm:"column:due_at;index"`
	CreateTime  time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
}

func (Assignment) TableName() string {
	return "assignment"
}

// Delivery is one student's work on one assignment. Once Locked the row is
// closed to further edits; the sweeper locks everything still open at the due
// date.
type Delivery struct {
	Id           int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	AssignmentId int64     `json:"assignment_id" gorm:"column:assignment_id;index:idx_delivery_assignment_student,unique"`
	StudentId    string    `json:"student_id" gorm:"column:student_id;index:idx_delivery_assignment_student,unique"`
	Status       string    `json:"status" gorm:"column:status;default:draft"`
	Locked       bool      `json:"locked" gorm:"column:locked;default:false"`
	UpdateTime   time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Delivery) TableName() string {
	return "delivery"
}

// Terminal reports whether the delivery reached a closed state.
func (d *Delivery) Terminal() bool {
	return d.Status == DeliveryStatusSubmitted || d.Status == DeliveryStatusGraded
}
