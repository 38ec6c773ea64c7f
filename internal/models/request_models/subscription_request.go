package request_models

type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required,oneof=monthly yearly"`
}
