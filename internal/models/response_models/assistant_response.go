package response_models

import "encoding/json"

type ChatResponse struct {
	Reply      string     `json:"reply"`
	DailyUsage DailyUsage `json:"daily_usage"`
}

// DocumentResponse carries the AI-generated planning document as raw
// JSON produced in strict-JSON mode.
type DocumentResponse struct {
	Kind     string          `json:"kind"`
	Document json.RawMessage `json:"document"`
}
