package models

// Preference is a per-user key/value pair.
// Value is opaque to the server; clients usually store JSON.
type Preference struct {
	UserID    string
	Key       string
	Value     string
	UpdatedAt int64
}
