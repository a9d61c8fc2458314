package v1

import "time"

type ProposeTeamRequest struct {
	CourseId  int64    `json:"course_id" binding:"required" example:"1"`
	Name      string   `json:"name" binding:"required" example:"team-rocket"`
	MemberIds []string `json:"member_ids" binding:"required" example:"s123456,s654321"` // proposed member user ids
}

type TeamData struct {
	Id           int64    `json:"id"`
	Name         string   `json:"name"`
	CourseId     int64    `json:"course_id"`
	Status       string   `json:"status"`
	PendingCount int      `json:"pending_count"`
	MemberIds    []string `json:"member_ids"`

	CpuMax       int `json:"cpu_max"`
	RamMax       int `json:"ram_max"`
	DiskSpaceMax int `json:"disk_space_max"`
	TotVM        int `json:"tot_vm"`
	ActiveVM     int `json:"active_vm"`
}

type TeamResponse struct {
	Response
	Data TeamData
}

// ResolveTokenResponseData reports whether the token was consumed. A token
// already used or unknown yields resolved=false, not an error.
type ResolveTokenResponseData struct {
	Resolved bool `json:"resolved"`
}

// TeamQuotaData reports current usage against the team caps.
type TeamQuotaData struct {
	UsedCpu       int `json:"used_cpu"`
	UsedRam       int `json:"used_ram"`
	UsedDiskSpace int `json:"used_disk_space"`
	UsedInstances int `json:"used_instances"`
	ActiveCount   int `json:"active_count"`
	CpuMax        int `json:"cpu_max"`
	RamMax        int `json:"ram_max"`
	DiskSpaceMax  int `json:"disk_space_max"`
	TotVM         int `json:"tot_vm"`
	ActiveVM      int `json:"active_vm"`
}

type TeamDetailData struct {
	TeamData
	Quota      TeamQuotaData        `json:"quota"`
	VMs        []VirtualMachineData `json:"vms"`
	CreateTime time.Time            `json:"create_time"`
}

type TeamDetailResponse struct {
	Response
	Data TeamDetailData
}
