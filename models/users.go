package models

// User is the canonical representation of a user exposed on the API,
// including the names of the groups the user belongs to. Group membership
// lives in the join table, not on the user row itself.
type User struct {
	UserID    string   `json:"userid"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Groups    []string `json:"groups"`
}

// UserPayload is the decoded body of a create or update request. Pointer
// fields distinguish absent keys from empty values so validation can report
// which field is missing.
type UserPayload struct {
	UserID    *string   `json:"userid"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Groups    []*string `json:"groups"`
}

// GroupPayload is the decoded body of an explicit group creation request.
type GroupPayload struct {
	Name *string `json:"name"`
}
