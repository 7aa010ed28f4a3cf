package requests

type SignupUser struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"required,user_role"`
	Email    string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone" validate:"required_without=Email,omitempty,phone_number"`
	Language string `json:"language" validate:"omitempty,min=2,max=50"`
	Password string `json:"password" validate:"password"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone" validate:"required_without=Email,omitempty,phone_number"`
	Password string `json:"password" validate:"required,min=8"`
}

type PhoneLogin struct {
	Assertion string `json:"assertion" validate:"required"`
	Name      string `json:"name" validate:"omitempty,min=2,max=100"`
}
