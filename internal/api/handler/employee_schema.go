package handler

type createEmployeeRequest struct {
	ExternalID *string `json:"external_id"`
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name"  validate:"required"`
	StoreID    int64   `json:"store_id"   validate:"required,gt=0"`
}

type createEmployeesRequest struct {
	Employees []createEmployeeRequest `json:"employees" validate:"required,min=1,dive"`
}

type employeeResponse struct {
	ID         int64   `json:"id"`
	ExternalID *string `json:"external_id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	StoreID    int64   `json:"store_id"`
}

type listEmployeesResponse struct {
	Items  []employeeResponse `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
