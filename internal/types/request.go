package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params"`
}

// DiscoverRequest represents a service discovery request
type DiscoverRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// ExecuteResponse is a tool Result tagged with the request ID
type ExecuteResponse struct {
	Result
	ToolID    string `json:"tool_id"`
	RequestID string `json:"request_id"`
}
