package request

// RegisterStaffRequest creates a staff account. Only admins reach this
// endpoint; role is validated against the known role set in the usecase.
type RegisterStaffRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	Role        string `json:"role" binding:"required"`
}
