package entity

// ForecastEntry is one 3-hour step of the 5-day forecast. Entries are not persisted.
type ForecastEntry struct {
	Timestamp   Timestamp `json:"timestamp"`
	Temp        float64   `json:"temp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
}
