package types

import (
	"encoding/json"
	"strings"
)

// LoginRequest is the body posted to the dj-rest-auth login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body posted to the dj-rest-auth registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// TokenResponse is the part of an auth response carrying the issued key.
// NonFieldErrors is only populated by failed logins.
type TokenResponse struct {
	Key            string    `json:"key,omitempty"`
	NonFieldErrors ErrorList `json:"non_field_errors,omitempty"`
}

// ErrorList accepts either a single string or a list of strings.
// Django REST framework sends a list; some backends send a plain string.
type ErrorList []string

func (e *ErrorList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*e = nil
		} else {
			*e = ErrorList{single}
		}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*e = list
	return nil
}

// String joins the messages with ", ".
func (e ErrorList) String() string {
	return strings.Join(e, ", ")
}
