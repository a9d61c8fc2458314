package model

import (
	"time"
)

const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

type User struct {
	Id         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId     string    `json:"user_id" gorm:"column:user_id;unique;not null"`
	Username   string    `json:"username" gorm:"column:username;unique;not null"`
	Nickname   string    `json:"nickname" gorm:"column:nickname"`
	Password   string    `json:"-" gorm:"column:password;not null"`
	Email      string    `json:"email" gorm:"column:email;unique;not null"`
	Role       string    `json:"role" gorm:"column:role;default:student"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (User) TableName() string {
	return "user"
}
