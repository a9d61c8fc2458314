package v1

type CreateVMRequest struct {
	TeamId    int64    `json:"team_id" binding:"required" example:"1"`
	Name      string   `json:"name" binding:"required" example:"vm-001"`
	Cpu       int      `json:"cpu" binding:"required,min=1" example:"2"`
	Ram       int      `json:"ram" binding:"required,min=1" example:"2048"`      // MB
	DiskSpace int      `json:"disk_space" binding:"required,min=1" example:"20"` // GB
	OwnerIds  []string `json:"owner_ids,omitempty"`                              // defaults to the creator
}

// ResizeVMRequest replaces the VM's declared resources; the quota check runs
// on the delta against current values.
type ResizeVMRequest struct {
	Cpu       int `json:"cpu" binding:"required,min=1" example:"4"`
	Ram       int `json:"ram" binding:"required,min=1" example:"4096"`
	DiskSpace int `json:"disk_space" binding:"required,min=1" example:"40"`
}

type AddVMOwnersRequest struct {
	OwnerIds []string `json:"owner_ids" binding:"required"`
}

type VirtualMachineData struct {
	Id        int64    `json:"id"`
	Name      string   `json:"name"`
	TeamId    int64    `json:"team_id"`
	Cpu       int      `json:"cpu"`
	Ram       int      `json:"ram"`
	DiskSpace int      `json:"disk_space"`
	Active    bool     `json:"active"`
	Creator   string   `json:"creator"`
	OwnerIds  []string `json:"owner_ids"`
}

type VirtualMachineResponse struct {
	Response
	Data VirtualMachineData
}

type ListVMResponseData struct {
	Items []VirtualMachineData `json:"items"`
	Total int                  `json:"total"`
}
