package models

// Score is the running total of one house.
type Score struct {
	ID    int    `json:"id"`
	House string `json:"house"`
	Score int    `json:"score"`
}

// DefaultHouses are seeded into an empty scores table.
var DefaultHouses = []string{"Atigala", "Parakrama", "Vijaya", "Gemunu"}
