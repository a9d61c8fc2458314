package v1

import "time"

type CreateAssignmentRequest struct {
	CourseId int64     `json:"course_id" binding:"required" example:"1"`
	Title    string    `json:"title" binding:"required" example:"Lab 3"`
	DueAt    time.Time `json:"due_at" binding:"required" example:"2026-06-30T23:59:00Z"`
}

type AssignmentData struct {
	Id          int64     `json:"id"`
	CourseId    int64     `json:"course_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
	DueAt       time.Time `json:"due_at"`
}

type AssignmentResponse struct {
	Response
	Data AssignmentData
}

type DeliveryData struct {
	Id           int64     `json:"id"`
	AssignmentId int64     `json:"assignment_id"`
	StudentId    string    `json:"student_id"`
	Status       string    `json:"status"`
	Locked       bool      `json:"locked"`
	UpdateTime   time.Time `json:"update_time"`
}

type DeliveryResponse struct {
	Response
	Data DeliveryData
}
