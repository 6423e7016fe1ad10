// Package validation holds the pure structural checks applied to request
// payloads before they reach storage. Whether a userid or group already
// exists is a storage concern, checked inside the write transaction, so
// nothing here touches the database.
package validation

import (
	"errors"
	"fmt"

	"github.com/planet-app/user-services/models"
)

// MissingFieldError reports a required field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

var (
	// ErrInvalidGroupList is returned when a user payload's groups entry
	// contains an empty or null element.
	ErrInvalidGroupList = errors.New("groups must be a list of non-empty strings")

	// ErrInvalidMemberList is returned when a group membership update is
	// not a unique list of non-empty strings.
	ErrInvalidMemberList = errors.New("members must be a unique list of non-empty strings")
)

// ValidateUser checks a candidate user payload and produces the domain user
// that will be written. Duplicate group names are collapsed, keeping first
// occurrence order, so repeated entries don't fail the write.
func ValidateUser(payload models.UserPayload) (models.User, error) {
	var user models.User

	switch {
	case payload.UserID == nil || *payload.UserID == "":
		return user, &MissingFieldError{Field: "userid"}
	case payload.FirstName == nil || *payload.FirstName == "":
		return user, &MissingFieldError{Field: "first_name"}
	case payload.LastName == nil || *payload.LastName == "":
		return user, &MissingFieldError{Field: "last_name"}
	}

	groups := []string{}
	seen := make(map[string]struct{}, len(payload.Groups))
	for _, g := range payload.Groups {
		if g == nil || *g == "" {
			return user, ErrInvalidGroupList
		}
		if _, ok := seen[*g]; ok {
			continue
		}
		seen[*g] = struct{}{}
		groups = append(groups, *g)
	}

	user = models.User{
		UserID:    *payload.UserID,
		FirstName: *payload.FirstName,
		LastName:  *payload.LastName,
		Groups:    groups,
	}
	return user, nil
}

// ValidateGroup checks an explicit group creation payload.
func ValidateGroup(payload models.GroupPayload) (string, error) {
	if payload.Name == nil || *payload.Name == "" {
		return "", &MissingFieldError{Field: "name"}
	}
	return *payload.Name, nil
}

// ValidateMembers checks a group membership list. Unlike a user's group
// list, duplicates here are rejected rather than collapsed.
func ValidateMembers(payload []*string) ([]string, error) {
	members := make([]string, 0, len(payload))
	seen := make(map[string]struct{}, len(payload))
	for _, m := range payload {
		if m == nil || *m == "" {
			return nil, ErrInvalidMemberList
		}
		if _, ok := seen[*m]; ok {
			return nil, ErrInvalidMemberList
		}
		seen[*m] = struct{}{}
		members = append(members, *m)
	}
	return members, nil
}
