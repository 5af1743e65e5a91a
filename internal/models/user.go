package models

// User is one record as served by the users service.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// UserFields holds the mutable part of a User; it is also the PUT body.
type UserFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Fields returns the mutable part of u.
func (u User) Fields() UserFields {
	return UserFields{Name: u.Name, Email: u.Email, Age: u.Age}
}

// WithFields returns a copy of u with its mutable fields replaced by f.
func (u User) WithFields(f UserFields) User {
	u.Name = f.Name
	u.Email = f.Email
	u.Age = f.Age
	return u
}
