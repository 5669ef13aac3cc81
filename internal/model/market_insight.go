package model

// AmenityScores rates an area from 0 to 10 per category.
type AmenityScores struct {
	Schools    int `json:"schools"`
	Transport  int `json:"transport"`
	Shopping   int `json:"shopping"`
	Healthcare int `json:"healthcare"`
	Security   int `json:"security"`
}

// MarketInsight summarizes prices and amenities for one area.
type MarketInsight struct {
	Area             string        `json:"area"`
	AverageRentPrice float64       `json:"averageRentPrice"`
	AverageSalePrice float64       `json:"averageSalePrice"`
	PricePerSqm      float64       `json:"pricePerSqm"`
	PriceChange      float64       `json:"priceChange"` // percent
	TotalListings    int           `json:"totalListings"`
	AmenityScores    AmenityScores `json:"amenityScores"`
}
