package venue

type TierInfo struct {
	TierName  string `json:"tier_name"`
	SeatCount int    `json:"seat_count"`
}

type CatalogResponse struct {
	Tiers      []TierInfo `json:"tiers"`
	TotalSeats int        `json:"total_seats"`
}
