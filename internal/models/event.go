package models

// Event is a scheduled item of the sports meet.
type Event struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"` // stored verbatim as submitted
	Description string `json:"description"`
}
