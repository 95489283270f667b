package dto

type StudentDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TeacherDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UsersDTO struct {
	Students []StudentDTO `json:"students"`
	Teachers []TeacherDTO `json:"teachers"`
}

// TokenRequestDTO is the development token issuance request; there is no
// password flow, identity is picked from the user listing.
type TokenRequestDTO struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=student teacher admin"`
}

type TokenResponseDTO struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Message string            `json:"message"`
	Details []string          `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
