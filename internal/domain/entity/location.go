package entity

// Location is a tracked city. Coordinates come from geocoding and identify the city for deduplication.
type Location struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Country     string     `json:"country" gorm:"not null"`
	Lat         float64    `json:"lat" gorm:"index:idx_location_coords"`
	Lon         float64    `json:"lon" gorm:"index:idx_location_coords"`
	DisplayName *string    `json:"display_name"`
	IsFavorite  bool       `json:"is_favorite" gorm:"not null;default:false"`
	LastSynced  *Timestamp `json:"last_synced"`
}

func (Location) TableName() string {
	return "location"
}

// Label is the user chosen display name, or the geocoded name when none is set.
func (l Location) Label() string {
	if l.DisplayName != nil && *l.DisplayName != "" {
		return *l.DisplayName
	}
	return l.Name
}
