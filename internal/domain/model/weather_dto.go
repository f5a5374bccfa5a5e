package model

import "weather-dashboard/internal/domain/model/external"

// BatchWeatherRequestDTO is the body of a multi-city lookup.
type BatchWeatherRequestDTO struct {
	Cities []string `json:"cities" validate:"required,min=1,dive,required"`
	Units  string   `json:"units"`
}

// CompareWeatherDTO holds two current readings side by side.
type CompareWeatherDTO struct {
	City1  *external.CurrentWeatherResponse `json:"city1"`
	City2  *external.CurrentWeatherResponse `json:"city2"`
	Labels UnitLabels                       `json:"labels"`
}

// ConnectionStatusDTO reports whether the provider answered a lookup for the default city.
type ConnectionStatusDTO struct {
	Connected bool   `json:"connected"`
	City      string `json:"city"`
	Message   string `json:"message"`
}
