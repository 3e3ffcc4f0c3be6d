package models

import "time"

// ParseResponse represents the response from a parse request
type ParseResponse struct {
	Success        bool          `json:"success"`
	Result         *ParseResult  `json:"result,omitempty"`
	Error          string        `json:"error,omitempty"`
	Strategy       string        `json:"strategy_used"` // "ml" or "rule_based"
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
