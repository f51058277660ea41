package domain

import "time"

type Borrower struct {
	ID        int32     `json:"id"`
	Code      string    `json:"code"` // self-reported ID, unique
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
}

// Registration carries the contact details a first-time borrower must
// supply during an issue. Stored details of a returning borrower are the
// source of truth and are never overwritten from this struct.
type Registration struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *Registration) Complete() bool {
	return r != nil && r.Name != "" && r.Email != "" && r.Phone != ""
}
