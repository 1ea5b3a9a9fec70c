package auth

// Error codes returned in the response envelope.
const (
	CodeInvalidToken       = "AUTH001"
	CodeTokenExpired       = "AUTH002"
	CodeInvalidMasterToken = "AUTH003"
)

const (
	MsgInvalidToken       = "Invalid token"
	MsgTokenExpired       = "Token has expired"
	MsgInvalidMasterToken = "Invalid master token"
)
