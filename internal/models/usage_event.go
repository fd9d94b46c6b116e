package models

// UsageEvent is published for every terminal processing outcome and for credit depletion.
type UsageEvent struct {
	Event     string `json:"event"`              // Event name, e.g. image.completed
	ImageID   string `json:"image_id,omitempty"` // Processed image id, empty for credit events
	UserID    string `json:"user_id"`            // Owner
	Operation string `json:"operation,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Model     string `json:"model,omitempty"`
	Cost      int    `json:"cost"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
