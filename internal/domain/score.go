package domain

// ValueScore rates a destination's money-for-value. The three ratio
// scores and the value rating are decimals in [0,10] rounded to one
// place; AvgDailyCost is the tier baseline in whole currency units.
type ValueScore struct {
	Overall      float64 `json:"overall"`
	CostOfLiving float64 `json:"cost_of_living"`
	ExchangeRate float64 `json:"exchange_rate"`
	ValueRating  float64 `json:"value_rating"`
	AvgDailyCost int     `json:"avg_daily_cost"`
}
