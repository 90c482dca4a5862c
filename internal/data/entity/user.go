package entity

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// UserFields are the document keys User maps to struct fields. Profile keys
// outside this set live in Extra.
var UserFields = []string{"_id", "name", "email", "photoURL", "role"}

// User is created on first sign-in. Email is the business key; role is only
// ever set to admin by promotion. Whatever else the client sent at sign-in
// (uid, phone, ...) is kept in Extra and stored inline in the document.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	Extra    bson.M             `bson:",inline" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// MarshalJSON flattens Extra next to the named fields. Named fields win on a
// key clash.
func (u User) MarshalJSON() ([]byte, error) {
	type fields User
	named, err := json.Marshal(fields(u))
	if err != nil || len(u.Extra) == 0 {
		return named, err
	}

	var known map[string]json.RawMessage
	if err := json.Unmarshal(named, &known); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(u.Extra)+len(known))
	for k, v := range u.Extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}
