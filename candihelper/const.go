package candihelper

const (
	// Version of this service
	Version = "v0.3.0"

	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// V1 const
	V1 = "/v1"

	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderAuthorization const
	HeaderAuthorization = "Authorization"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
	// HeaderXRequestID const
	HeaderXRequestID = "X-Request-Id"
	// HeaderDisableTrace const
	HeaderDisableTrace = "X-Disable-Trace"

	// Byte ...
	Byte uint64 = 1
	// KByte ...
	KByte = Byte * 1024

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"
)
