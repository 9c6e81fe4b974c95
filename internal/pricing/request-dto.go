package pricing

type QuoteRequest struct {
	TargetGross  float64 `json:"target_gross" binding:"required,gt=0"`
	PremiumShare float64 `json:"premium_share" binding:"required,gte=20,lte=80"`
}
