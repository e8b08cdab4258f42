package helpers

// Request/Response DTOs
type AssetRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	MinBid   int    `json:"min_bid" binding:"gte=0"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
}

type TeamRequest struct {
	Name           string `json:"name" binding:"required"`
	Login          string `json:"login"`
	AccessCode     string `json:"access_code"`
	StartingBudget int    `json:"starting_budget" binding:"gte=0"`
}

type DurationRequest struct {
	Seconds int `json:"seconds" binding:"required,gt=0"`
}
