package app

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
