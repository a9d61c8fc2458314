package v1

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@polito.example"`
	Password string `json:"password" binding:"required,min=6" example:"123456"`
	Role     string `json:"role" binding:"omitempty,oneof=teacher student" example:"student"`
}

type LoginRequest struct {
	Account  string `json:"account" binding:"required" example:"alice"` // username or email
	Password string `json:"password" binding:"required" example:"123456"`
}
type LoginResponseData struct {
	AccessToken string `json:"accessToken"`
}
type LoginResponse struct {
	Response
	Data LoginResponseData
}

type UpdateProfileRequest struct {
	Nickname    string `json:"nickname" example:"alan"`
	OldPassword string `json:"oldPassword" example:"oldpassword"`
	NewPassword string `json:"newPassword" example:"newpassword"`
}
type GetProfileResponseData struct {
	UserId   string `json:"userId"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@polito.example"`
	Nickname string `json:"nickname" example:"alan"`
	Role     string `json:"role" example:"student"`
}
type GetProfileResponse struct {
	Response
	Data GetProfileResponseData
}
