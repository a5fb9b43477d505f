package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD

	// Analysis
	ErrorCode_ANALYSIS_INVALID_MODE
	ErrorCode_ANALYSIS_EMPTY_TRANSCRIPT
	ErrorCode_ANALYSIS_FAILED
	ErrorCode_SESSION_NOT_FOUND

	// External services
	ErrorCode_TRANSCRIPTION_FAILED
	ErrorCode_SENTIMENT_UNAVAILABLE
	ErrorCode_UPLOAD_FAILED

	// Infrastructure
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_INTEGRATION_CACHE_FAILED
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                         "UNKNOWN",
	ErrorCode_HTTP_OK:                         "OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_ANALYSIS_INVALID_MODE:           "ANALYSIS_INVALID_MODE",
	ErrorCode_ANALYSIS_EMPTY_TRANSCRIPT:       "ANALYSIS_EMPTY_TRANSCRIPT",
	ErrorCode_ANALYSIS_FAILED:                 "ANALYSIS_FAILED",
	ErrorCode_SESSION_NOT_FOUND:               "SESSION_NOT_FOUND",
	ErrorCode_TRANSCRIPTION_FAILED:            "TRANSCRIPTION_FAILED",
	ErrorCode_SENTIMENT_UNAVAILABLE:           "SENTIMENT_UNAVAILABLE",
	ErrorCode_UPLOAD_FAILED:                   "UPLOAD_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the error code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
