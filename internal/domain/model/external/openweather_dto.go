package external

import (
	"encoding/json"
	"time"
)

// ProviderCode holds a provider field that is sometimes a JSON number and sometimes a string,
// like `cod` (200 vs "404") and the forecast `message` (0 vs "city not found").
type ProviderCode string

// UnmarshalJSON accepts strings, numbers and null.
func (c *ProviderCode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ProviderCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ProviderCode(n.String())
	return nil
}

func (c ProviderCode) String() string {
	return string(c)
}

// ProviderEnvelope is the status block the provider embeds in its responses.
// An absent cod or "200" means success, anything else is a logical error even on HTTP 200.
type ProviderEnvelope struct {
	Cod     ProviderCode `json:"cod,omitempty"`
	Message ProviderCode `json:"message,omitempty"`
}

// Failed reports whether the envelope carries a non-success cod.
func (e ProviderEnvelope) Failed() bool {
	return e.Cod != "" && e.Cod != "200"
}

// Coord is a latitude/longitude pair in degrees.
type Coord struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// WeatherCondition is one entry of the provider "weather" array.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainMetrics struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
	SeaLevel  int     `json:"sea_level,omitempty"`
	GrndLevel int     `json:"grnd_level,omitempty"`
	TempKf    float64 `json:"temp_kf,omitempty"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
	Gust  float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

// Precipitation is the rain or snow volume in mm for the last hour or three hours.
type Precipitation struct {
	OneHour    float64 `json:"1h,omitempty"`
	ThreeHours float64 `json:"3h,omitempty"`
}

type CurrentSys struct {
	Type    int    `json:"type,omitempty"`
	ID      int    `json:"id,omitempty"`
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}

// ReadingMetadata is attached to every successful reading.
type ReadingMetadata struct {
	CitySearched  string    `json:"city_searched,omitempty"`
	Coordinates   *Coord    `json:"coordinates,omitempty"`
	Units         string    `json:"units,omitempty"`
	DaysRequested int       `json:"days_requested,omitempty"`
	FetchTime     time.Time `json:"fetch_time"`
	// ResponseTime is the provider round trip in seconds.
	ResponseTime float64 `json:"response_time"`
}

// CurrentWeatherResponse is the /weather payload, passed through with an added _metadata block.
type CurrentWeatherResponse struct {
	ProviderEnvelope
	Coord      Coord              `json:"coord"`
	Weather    []WeatherCondition `json:"weather"`
	Base       string             `json:"base,omitempty"`
	Main       MainMetrics        `json:"main"`
	Visibility int                `json:"visibility"`
	Wind       Wind               `json:"wind"`
	Clouds     Clouds             `json:"clouds"`
	Rain       *Precipitation     `json:"rain,omitempty"`
	Snow       *Precipitation     `json:"snow,omitempty"`
	Dt         int64              `json:"dt"`
	Sys        CurrentSys         `json:"sys"`
	Timezone   int                `json:"timezone"`
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Metadata   *ReadingMetadata   `json:"_metadata,omitempty"`
}

type ForecastSys struct {
	Pod string `json:"pod"`
}

// ForecastEntry is one 3-hour step of a forecast.
type ForecastEntry struct {
	Dt         int64              `json:"dt"`
	Main       MainMetrics        `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Clouds     Clouds             `json:"clouds"`
	Wind       Wind               `json:"wind"`
	Visibility int                `json:"visibility"`
	Pop        float64            `json:"pop"`
	Rain       *Precipitation     `json:"rain,omitempty"`
	Snow       *Precipitation     `json:"snow,omitempty"`
	Sys        ForecastSys        `json:"sys"`
	DtTxt      string             `json:"dt_txt"`
}

type ForecastCity struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Coord      Coord  `json:"coord"`
	Country    string `json:"country"`
	Population int    `json:"population,omitempty"`
	Timezone   int    `json:"timezone"`
	Sunrise    int64  `json:"sunrise"`
	Sunset     int64  `json:"sunset"`
}

// ForecastResponse is the /forecast payload.
type ForecastResponse struct {
	ProviderEnvelope
	Cnt      int              `json:"cnt"`
	List     []ForecastEntry  `json:"list"`
	City     ForecastCity     `json:"city"`
	Metadata *ReadingMetadata `json:"_metadata,omitempty"`
}

// GeocodeResult is one match of the geocoding /direct endpoint.
type GeocodeResult struct {
	Name       string            `json:"name"`
	LocalNames map[string]string `json:"local_names,omitempty"`
	Lat        float64           `json:"lat"`
	Lon        float64           `json:"lon"`
	Country    string            `json:"country"`
	State      string            `json:"state,omitempty"`
}

type AirQualityIndex struct {
	AQI int `json:"aqi"`
}

type AirPollutionEntry struct {
	Main       AirQualityIndex    `json:"main"`
	Components map[string]float64 `json:"components"`
	Dt         int64              `json:"dt"`
}

// AirPollutionResponse is the /air_pollution payload.
type AirPollutionResponse struct {
	ProviderEnvelope
	Coord Coord               `json:"coord"`
	List  []AirPollutionEntry `json:"list"`
}

// APIErrorResponse is the body the provider sends with non-2xx statuses.
type APIErrorResponse struct {
	Cod     ProviderCode `json:"cod"`
	Message string       `json:"message"`
}
