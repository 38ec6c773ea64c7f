package request_models

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type DocumentRequest struct {
	Kind         string `json:"kind" binding:"required,oneof=checklist budget timeline"`
	WeddingDate  string `json:"wedding_date,omitempty"` // "2006-01-02"
	GuestCount   int    `json:"guest_count,omitempty"`
	BudgetTotal  int64  `json:"budget_total,omitempty"`
	ExtraContext string `json:"extra_context,omitempty"`
}
