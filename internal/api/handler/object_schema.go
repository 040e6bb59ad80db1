package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

type createObjectRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age"   validate:"omitempty,gte=0,lte=150"`
}

// patchObjectRequest distinguishes absent fields from zero values; only
// non-nil fields are applied.
type patchObjectRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Age   *int    `json:"age"   validate:"omitempty,gte=0,lte=150"`
}

type objectResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       *int   `json:"age,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type listObjectsResponse struct {
	Items  []objectResponse `json:"items"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type objectProfileResponse struct {
	Object     objectResponse `json:"object"`
	ProfileURL string         `json:"profile_url"`
}
