package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// define error types for generation aborts
var (
	ErrInput  = errors.New("input error")
	ErrOutput = errors.New("output error")

	ErrInvalidOption   = fmt.Errorf("%w: %v", ErrInput, "invalid option argument")
	ErrNoUnconditional = fmt.Errorf("%w: %v", ErrInput, "no unconditional types found")
	ErrDuplicateName   = fmt.Errorf("%w: %v", ErrInput, "duplicate name")
	ErrStale           = fmt.Errorf("%w: %v", ErrOutput, "generated files are out of date")
)

// IsErrorInput verifies error
func IsErrorInput(err error) bool {
	return errors.Is(err, ErrInput)
}

// IsErrorOutput verifies error
func IsErrorOutput(err error) bool {
	return errors.Is(err, ErrOutput)
}

// IsErrorFileAccess verifies error
func IsErrorFileAccess(err error) bool {
	return IsErrorNotExist(err) ||
		IsErrorPermission(err) ||
		IsErrorReadOnly(err)
}

// IsErrorNotExist verifies error
func IsErrorNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsErrorPermission verifies error
func IsErrorPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsErrorReadOnly verifies error
func IsErrorReadOnly(err error) bool {
	return errors.Is(err, syscall.EROFS)
}
