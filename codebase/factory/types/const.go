package types

// Service name of running service
type Service string

// Module name of service module
type Module string

// Server is the type returned by a classifier server
type Server string

const (
	// REST server
	REST Server = "rest"
)
