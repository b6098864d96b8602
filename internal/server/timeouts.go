package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout and warmUpTimeout remain vars for tests to override.
var (
	shutdownTimeout = 10 * time.Second
	warmUpTimeout   = 30 * time.Second
)
