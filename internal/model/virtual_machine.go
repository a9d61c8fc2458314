package model

import (
	"time"
)

// VirtualMachine tracks declared resource numbers only; no hypervisor is
// involved. Name is unique within the owning team.
type VirtualMachine struct {
	Id         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"column:name;index:idx_vm_team_name,unique"`
	TeamId     int64     `json:"team_id" gorm:"column:team_id;index:idx_vm_team_name,unique"`
	Cpu        int       `json:"cpu" gorm:"column:cpu"`
	Ram        int       `json:"ram" gorm:"column:ram"`               // MB
	DiskSpace  int       `json:"disk_space" gorm:"column:disk_space"` // GB
	Active     bool      `json:"active" gorm:"column:active;default:false"`
	Creator    string    `json:"creator" gorm:"column:creator"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (VirtualMachine) TableName() string {
	return "virtual_machine"
}

// VMOwner stores the team id redundantly so an eviction can drop all owner
// links of a team in one statement.
type VMOwner struct {
	Id         int64     `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	VmId       int64     `json:"vm_id" gorm:"column:vm_id;index:idx_owner_vm_student,unique"`
	TeamId     int64     `json:"team_id" gorm:"column:team_id;index"`
	StudentId  string    `json:"student_id" gorm:"column:student_id;index:idx_owner_vm_student,unique"`
	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
}

func (VMOwner) TableName() string {
	return "vm_owner"
}
