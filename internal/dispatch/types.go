package dispatch

// Result is the uniform envelope produced by every operation handler.
// No handler error escapes the dispatcher boundary.
type Result struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}

func failed(message string) Result {
	return Result{Success: false, Message: message}
}
