package models

// Count is one bar of a dashboard chart.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the per-user dashboard aggregate.
type Summary struct {
	TotalODs           int     `json:"totalODs"`
	ODsByStatus        []Count `json:"odsByStatus"`
	ODsByType          []Count `json:"odsByType"`
	TotalPlacements    int     `json:"totalPlacements"`
	Companies          int     `json:"companies"`
	Offers             int     `json:"offers"`
	PlacementsByStatus []Count `json:"placementsByStatus"`
}
