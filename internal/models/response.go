package models

// ErrorResponse is the uniform JSON error body returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RouteErrorResponse reports a failed pair calculation. The two legs fail
// independently, so each carries its own message; an empty field means
// that leg succeeded before the pair was abandoned.
type RouteErrorResponse struct {
	Message     string `json:"message"`
	LegInError  string `json:"leg_in_error,omitempty"`
	LegOutError string `json:"leg_out_error,omitempty"`
}
