package domain

type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly_cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionRainy        Condition = "rainy"
)

// Conditions lists every synthesizable condition.
var Conditions = []Condition{
	ConditionSunny, ConditionPartlyCloudy, ConditionCloudy, ConditionRainy,
}

// WeatherDay is one synthetic daily forecast entry. Temperature is in
// degrees Fahrenheit, precipitation a percent chance.
type WeatherDay struct {
	Day           int       `json:"day"`
	Temp          int       `json:"temp"`
	Condition     Condition `json:"condition"`
	Precipitation int       `json:"precipitation"`
	UVIndex       int       `json:"uv_index"`
}
