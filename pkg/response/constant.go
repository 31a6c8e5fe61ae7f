package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage = "Internal server error"

	InternalServerErrorCode = 500
	ServiceUnavailableCode  = 503
)
