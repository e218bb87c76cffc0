// Package main provides the entry point for the phone-mode service.
// It initializes and runs a web server using the Fiber framework that maps
// phone numbers to a handling mode (CALL or OTP) through a REST API.
// The application uses gorm for data persistence and seeds a baseline set
// of number/mode pairs at startup.
package main
