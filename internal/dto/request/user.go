package request

import (
	"encoding/json"

	"bistro-boss/internal/data/entity"
)

// CreateUserRequest is the sign-in profile. Keys other than the named ones
// are collected into Extra and stored with the user.
type CreateUserRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email" validate:"required,email"`
	PhotoURL string         `json:"photoURL"`
	Extra    map[string]any `json:"-"`
}

func (r *CreateUserRequest) UnmarshalJSON(data []byte) error {
	type fields CreateUserRequest
	var named fields
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, key := range entity.UserFields {
		delete(all, key)
	}

	*r = CreateUserRequest(named)
	if len(all) > 0 {
		r.Extra = all
	}
	return nil
}
