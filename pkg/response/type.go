package response

// Resp is the envelope every endpoint returns. Exactly one of Data and
// Errors is populated.
type Resp struct {
	Data   any         `json:"data"`
	Errors []ErrorItem `json:"errors"`
}

// ErrorItem is a single entry of Resp.Errors.
type ErrorItem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}
