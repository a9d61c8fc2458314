package v1

var (
	// common errors
	ErrSuccess             = newError(0, "ok")
	ErrBadRequest          = newError(400, "bad request")
	ErrUnauthorized        = newError(401, "unauthorized")
	ErrNotFound            = newError(404, "not found")
	ErrInternalServerError = newError(500, "internal server error")

	// account errors
	ErrEmailAlreadyUse    = newError(1001, "The email is already in use.")
	ErrUsernameAlreadyUse = newError(1002, "The username is already in use.")

	// lookup errors
	ErrCourseNotFound     = newError(2001, "course not found")
	ErrStudentNotFound    = newError(2002, "student not found")
	ErrTeamNotFound       = newError(2003, "team not found")
	ErrVMNotFound         = newError(2004, "virtual machine not found")
	ErrAssignmentNotFound = newError(2006, "assignment not found")
	ErrDeliveryNotFound   = newError(2007, "delivery not found")

	// team formation errors
	ErrCourseDisabled    = newError(3001, "course disabled")
	ErrNotEnrolled       = newError(3002, "student not enrolled in course")
	ErrAlreadyTeamed     = newError(3003, "student already belongs to a team in this course")
	ErrTeamCardinality   = newError(3004, "team size outside course bounds or duplicate members")
	ErrDuplicateTeamName = newError(3005, "team name already used in this course")
	ErrTeamNotActive     = newError(3006, "team not active")
	ErrAlreadyEnrolled   = newError(3007, "student already enrolled")

	// quota errors
	ErrQuotaCpuExceeded       = newError(4001, "cpu quota exceeded")
	ErrQuotaRamExceeded       = newError(4002, "ram quota exceeded")
	ErrQuotaDiskExceeded      = newError(4003, "disk space quota exceeded")
	ErrQuotaInstancesExceeded = newError(4004, "instance quota exceeded")
	ErrQuotaActiveExceeded    = newError(4005, "active instance quota exceeded")
	ErrDuplicateVMName        = newError(4006, "vm name already used in this team")

	// authorization errors
	ErrNotTeamMember    = newError(5001, "student is not a member of this team")
	ErrNotVMOwner       = newError(5002, "student is not an owner of this vm")
	ErrNotCourseTeacher = newError(5003, "user is not the teacher of this course")

	// delivery errors
	ErrDeliveryLocked = newError(6001, "delivery is locked")
)
