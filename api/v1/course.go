package v1

// CreateCourseRequest carries the team size bounds and the per-team VM
// resource template.
type CreateCourseRequest struct {
	Name            string `json:"name" binding:"required" example:"Cloud Computing"`
	MinTeamSize     int    `json:"min_team_size" binding:"required,min=1" example:"2"`
	MaxTeamSize     int    `json:"max_team_size" binding:"required,min=1" example:"4"`
	CpuMax          int    `json:"cpu_max" binding:"min=0" example:"8"`
	RamMax          int    `json:"ram_max" binding:"min=0" example:"16384"`
	DiskSpaceMax    int    `json:"disk_space_max" binding:"min=0" example:"200"`
	TotalInstances  int    `json:"total_instances" binding:"min=0" example:"6"`
	ActiveInstances int    `json:"active_instances" binding:"min=0" example:"3"`
}

// UpdateCourseRequest updates bounds, template or enabled flag. Template
// changes apply to teams proposed afterwards only.
type UpdateCourseRequest struct {
	Enabled         *bool `json:"enabled,omitempty"`
	MinTeamSize     *int  `json:"min_team_size,omitempty"`
	MaxTeamSize     *int  `json:"max_team_size,omitempty"`
	CpuMax          *int  `json:"cpu_max,omitempty"`
	RamMax          *int  `json:"ram_max,omitempty"`
	DiskSpaceMax    *int  `json:"disk_space_max,omitempty"`
	TotalInstances  *int  `json:"total_instances,omitempty"`
	ActiveInstances *int  `json:"active_instances,omitempty"`
}

type CourseData struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	TeacherId       string `json:"teacher_id"`
	Enabled         bool   `json:"enabled"`
	MinTeamSize     int    `json:"min_team_size"`
	MaxTeamSize     int    `json:"max_team_size"`
	CpuMax          int    `json:"cpu_max"`
	RamMax          int    `json:"ram_max"`
	DiskSpaceMax    int    `json:"disk_space_max"`
	TotalInstances  int    `json:"total_instances"`
	ActiveInstances int    `json:"active_instances"`
}

type CourseResponse struct {
	Response
	Data CourseData
}

type EnrollRequest struct {
	StudentId string `json:"student_id" binding:"required" example:"s123456"`
}

// EnrollCSVResultRow reports the outcome for one CSV line. The CSV has a
// header line and one student email per record.
type EnrollCSVResultRow struct {
	Line  int    `json:"line"`
	Email string `json:"email"`
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type EnrollCSVResponseData struct {
	Enrolled int                  `json:"enrolled"`
	Rows     []EnrollCSVResultRow `json:"rows"`
}
