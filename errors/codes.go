package errors

// ErrorCode identifies an application error class independent of HTTP
// status.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003
	ErrorCode_INTERNAL         ErrorCode = 1500

	ErrorCode_EMPTY_TRANSCRIPT       ErrorCode = 2001
	ErrorCode_UNSUPPORTED_FORMAT     ErrorCode = 2002
	ErrorCode_UNSUPPORTED_CHANNEL    ErrorCode = 2003
	ErrorCode_RENDER_FAILED          ErrorCode = 2004
	ErrorCode_SUMMARIZER_UNAVAILABLE ErrorCode = 2005
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                "OK",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_EMPTY_TRANSCRIPT:       "EMPTY_TRANSCRIPT",
	ErrorCode_UNSUPPORTED_FORMAT:     "UNSUPPORTED_FORMAT",
	ErrorCode_UNSUPPORTED_CHANNEL:    "UNSUPPORTED_CHANNEL",
	ErrorCode_RENDER_FAILED:          "RENDER_FAILED",
	ErrorCode_SUMMARIZER_UNAVAILABLE: "SUMMARIZER_UNAVAILABLE",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
