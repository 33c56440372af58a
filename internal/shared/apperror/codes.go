package apperror

const (
	// Input and capability errors
	CodeInvalidInput         = "INVALID_INPUT"
	CodeInvalidRate          = "INVALID_RATE"
	CodeMissingPeriodInput   = "MISSING_PERIOD_INPUT"
	CodeUnsupportedOperation = "UNSUPPORTED_OPERATION"

	// Infrastructure errors
	CodeLogWriteFailed = "LOG_WRITE_FAILED"
	CodeInternalError  = "INTERNAL_ERROR"
)
