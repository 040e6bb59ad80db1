package domain

// Employee is a directory entry scoped to a store.
type Employee struct {
	ID         int64   `json:"id"`
	ExternalID *string `json:"external_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	StoreID    int64   `json:"store_id"`
}
