package model

// Subject is a registered subject, keyed by subject code.
type Subject struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
