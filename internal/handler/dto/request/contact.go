package request

type ContactRequest struct {
	Name    string  `json:"name" binding:"required,max=120"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,phone"`
	Message string  `json:"message" binding:"required,max=2000"`
}
