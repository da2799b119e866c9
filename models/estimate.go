package models

import "github.com/shopspring/decimal"

// PriceEstimate is the running quote for the current draft. Component values
// are kept unrounded; only Total carries the 2dp rounding so small surcharges
// never compound a rounding error.
type PriceEstimate struct {
	BaseFee           decimal.Decimal `json:"baseFee"`
	DistanceComponent decimal.Decimal `json:"distanceComponent"`
	Surcharges        decimal.Decimal `json:"surcharges"`
	Total             decimal.Decimal `json:"total"`
	Currency          string          `json:"currency"`
	DistanceKM        float64         `json:"distanceKm"`
}
