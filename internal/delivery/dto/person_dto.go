package dto

// PersonRequest holds the fields shared by admin, doctor and patient requests.
type PersonRequest struct {
	FirstName   string `json:"first_name" validate:"required,notblank,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,max=100"`
	Gender      string `json:"gender" validate:"required,oneof=male female"`
	Address     string `json:"address" validate:"required,notblank"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7,max=20"`
	Email       string `json:"email" validate:"required,email"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
}

type PersonResponse struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	FullName    string `json:"full_name"`
	Gender      string `json:"gender"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
}
