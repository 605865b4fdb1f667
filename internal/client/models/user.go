package models

import "encoding/json"

// User is the profile snapshot kept alongside the auth token.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Bio   string `json:"bio,omitempty"`
	IBAN  string `json:"iban,omitempty"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.AltID
	}
	return nil
}

// Session is the persisted {token, user} pair representing the logged-in
// identity on-device.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
