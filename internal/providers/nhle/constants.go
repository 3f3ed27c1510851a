package nhle

import "time"

const (
	providerName       = "nhle"
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultUserAgent   = "NHL Player Database Generator 1.0"
	defaultHTTPTimeout = 30 * time.Second
	// Bytes of a non-2xx body kept for the error message.
	errorBodyLimit = 512
)
