package response

const (
	DefaultStackTraceDepth = 32

	CodeValidation = "AUTH004"
	CodeInternal   = "AUTH500"

	ValidationErrorMsg     = "Validation error"
	InternalServerErrorMsg = "Internal server error"

	reportTitle = "================ TOKEN SERVICE ERROR ================"
	reportRule  = "-----------------------------------------------------"
)
