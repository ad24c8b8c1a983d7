package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FlexID is a record identifier that may arrive as a JSON string or number.
// It normalizes to a string so list keys never collide on falsy values.
type FlexID string

// UnmarshalJSON accepts both string and numeric ids
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = FlexID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexID(num.String())
		return nil
	}

	return fmt.Errorf("id must be a string or number, got %s", s)
}

// String returns the normalized id
func (f FlexID) String() string {
	return string(f)
}

// User is the identity record the backend returns on login and from /users.
//
// Mongo-backed records carry "_id"; some revisions of the backend also
// emit "id". EffectiveID resolves whichever is present.
type User struct {
	ID       FlexID `json:"id,omitempty"`
	MongoID  FlexID `json:"_id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`

	// Optional profile fields
	CPF              string `json:"cpf,omitempty"`
	Empresa          string `json:"empresa,omitempty"`
	Setor            string `json:"setor,omitempty"`
	DataDeNascimento string `json:"data_de_nascimento,omitempty"`
	Planta           string `json:"planta,omitempty"`
}

// EffectiveID returns the record's id, preferring "id" over "_id"
func (u *User) EffectiveID() string {
	if u.ID != "" {
		return u.ID.String()
	}
	return u.MongoID.String()
}

// Validate checks the fields a stored identity must have
func (u *User) Validate() error {
	if u.EffectiveID() == "" {
		return fmt.Errorf("user record has no id")
	}
	if u.Username == "" {
		return fmt.Errorf("user record has no username")
	}
	return u.Role.Validate()
}
