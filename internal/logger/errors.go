package logger

import (
	"errors"
)

var (
	// ErrServiceNameIsEmpty error if the log config has no service name.
	ErrServiceNameIsEmpty = errors.New("log config servicename can not be empty")

	// ErrAppNameIsEmpty error if the log config has no app name.
	ErrAppNameIsEmpty = errors.New("log config appname can not be empty")
)
