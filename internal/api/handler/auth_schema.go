package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	Role      string `json:"role"       validate:"required,oneof=user guide"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionResponse is what the browser renders its shell from: the
// authentication flag, the resolved dashboard view, and the identity
// snapshot. The view is computed server-side so role routing lives in
// exactly one place.
type sessionResponse struct {
	IsAuthenticated bool                  `json:"is_authenticated"`
	View            string                `json:"view,omitempty"`
	User            *userResponse         `json:"user,omitempty"`
	GuideProfile    *guideProfileResponse `json:"guide_profile,omitempty"`
}
