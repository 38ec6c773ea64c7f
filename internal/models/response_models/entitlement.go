package response_models

// DailyUsage reports assistant quota for the current calendar day.
// Limit and Remaining are nil for premium accounts (unlimited).
type DailyUsage struct {
	Used      int  `json:"used"`
	Limit     *int `json:"limit"`
	Remaining *int `json:"remaining"`
}

// Entitlement is the read model the client renders to gate premium
// features. ExpiresAt and TrialDaysLeft are nil when not applicable.
type Entitlement struct {
	Plan          string     `json:"plan"`
	IsPremium     bool       `json:"is_premium"`
	IsTrialActive bool       `json:"is_trial_active"`
	TrialDaysLeft *int       `json:"trial_days_left"`
	ExpiresAt     *int64     `json:"expires_at"`
	DailyUsage    DailyUsage `json:"daily_usage"`
}
