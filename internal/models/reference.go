package models

// ReferenceTag is a reusable reference name that exists independently of any
// event. Event references resolve against event names and these tags alike.
type ReferenceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
