package external

// GeoLocationResponse is one match of the OpenWeather direct geocoding API
type GeoLocationResponse struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

// ConditionDTO is an entry of the "weather" array shared by current and forecast responses
type ConditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO holds the temperature block
type MainDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

// WindDTO holds the wind block
type WindDTO struct {
	Speed float64 `json:"speed"`
}

// CurrentWeatherResponse represents the response of /data/2.5/weather
type CurrentWeatherResponse struct {
	Dt      int64          `json:"dt"`
	Name    string         `json:"name"`
	Main    MainDTO        `json:"main"`
	Weather []ConditionDTO `json:"weather"`
	Wind    WindDTO        `json:"wind"`
}

// ForecastItemDTO is one 3-hour step of /data/2.5/forecast
type ForecastItemDTO struct {
	Dt      int64          `json:"dt"`
	Main    MainDTO        `json:"main"`
	Weather []ConditionDTO `json:"weather"`
}

// ForecastResponse represents the response of /data/2.5/forecast
type ForecastResponse struct {
	List []ForecastItemDTO `json:"list"`
}

// APIErrorResponse represents an error body returned by OpenWeather. Cod is a number or a string depending on the endpoint.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
