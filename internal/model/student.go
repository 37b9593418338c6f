package model

// Student is a registered student, keyed by roll number.
type Student struct {
	Roll string `json:"roll"`
	Name string `json:"name"`
}
