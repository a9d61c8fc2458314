package model

import (
	"time"
)

// ConfirmationToken is a single-use credential letting one proposed member
// accept or decline team membership. The id is unguessable (crypto/rand).
// Resolution deletes the row, so a consumed token can never be looked up again.
type ConfirmationToken struct {
	Id         string    `json:"id" gorm:"column:id;primaryKey"`
	TeamId     int64     `json:"team_id" gorm:"column:team_id;index"`
	StudentId  string    `json:"student_id" gorm:"column:student_id;index"`
	ExpiresAt  time.Time `json:"expires_at" gorm:"column:expires_at;index"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
}

func (ConfirmationToken) TableName() string {
	return "confirmation_token"
}
