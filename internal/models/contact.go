package models

// Contact is one row of the contacts table used to pre-fill the
// notification recipient list.
type Contact struct {
	Province string `json:"province"`
	Team     string `json:"team"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}
