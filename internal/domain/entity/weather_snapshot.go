package entity

// WeatherSnapshot is a point-in-time reading stored for a location.
type WeatherSnapshot struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	LocationID  int64     `json:"location_id" gorm:"not null;index"`
	Temp        float64   `json:"temp"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	FeelsLike   float64   `json:"feels_like"`
	Timestamp   Timestamp `json:"timestamp" gorm:"not null;index"`
}

func (WeatherSnapshot) TableName() string {
	return "weather_snapshot"
}
