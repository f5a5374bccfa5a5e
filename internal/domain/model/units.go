package model

// Units selects the provider's unit system. The value is passed through untouched;
// the provider decides what it accepts.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// UnitLabels are the display suffixes for a unit system.
type UnitLabels struct {
	Temperature string `json:"temperature"`
	Speed       string `json:"speed"`
	Pressure    string `json:"pressure"`
}

// Labels returns the display suffixes for u. Unknown values get the standard (Kelvin) labels,
// which is what the provider falls back to.
func (u Units) Labels() UnitLabels {
	switch u {
	case UnitsMetric:
		return UnitLabels{Temperature: "°C", Speed: "m/s", Pressure: "hPa"}
	case UnitsImperial:
		return UnitLabels{Temperature: "°F", Speed: "mph", Pressure: "hPa"}
	default:
		return UnitLabels{Temperature: "K", Speed: "m/s", Pressure: "hPa"}
	}
}

func (u Units) String() string {
	return string(u)
}
