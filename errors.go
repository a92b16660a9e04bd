package linenoise

import "errors"

// Common errors
var (
	// ErrInvalidArgument is returned for a bad capacity, an unusable provider
	// or an out-of-range hint color.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned by History.Get and History.Set
	ErrIndexOutOfRange = errors.New("invalid index")
	// ErrIO is returned when a history file cannot be opened, read or written.
	// The underlying os error is wrapped as well.
	ErrIO = errors.New("i/o failure")
	// ErrEncoding is returned when text is not valid under the active charset
	ErrEncoding = errors.New("invalid text encoding")
	// ErrTypeMismatch is returned when a setting receives a value of the wrong type
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInterrupted is returned when the user presses Ctrl+C
	ErrInterrupted = errors.New("interrupted")
	// ErrBusy is returned when ReadLine is called while another read is in progress
	ErrBusy = errors.New("read already in progress")
)
