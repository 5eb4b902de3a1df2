package gfx

import (
	"errors"
	"fmt"
)

var (
	ErrContextUnavailable = errors.New("gfx: rendering context unavailable")
	ErrAllocation         = errors.New("gfx: driver allocation failed")
	ErrCompile            = errors.New("gfx: shader compilation failed")
	ErrLink               = errors.New("gfx: program link failed")
)

const (
	unknownCompileError = "unknown compile error"
	unknownLinkError    = "unknown link error"
)

// ContextUnavailableError reports a surface that could not produce a
// compatible rendering context.
type ContextUnavailableError struct {
	Err error
}

func (e *ContextUnavailableError) Error() string {
	if e.Err == nil {
		return ErrContextUnavailable.Error()
	}
	return fmt.Sprintf("%v: %v", ErrContextUnavailable, e.Err)
}

func (e *ContextUnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrContextUnavailable}
	}
	return []error{ErrContextUnavailable, e.Err}
}

// AllocationError reports a driver that refused to create an object.
type AllocationError struct {
	Object string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrAllocation, e.Object)
}

func (e *AllocationError) Unwrap() error { return ErrAllocation }

// CompileError carries the driver diagnostic of a failed shader stage.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%v (%s): %s", ErrCompile, e.Stage, e.Log)
}

func (e *CompileError) Unwrap() error { return ErrCompile }

// LinkError carries the driver diagnostic of a failed program link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%v: %s", ErrLink, e.Log)
}

func (e *LinkError) Unwrap() error { return ErrLink }
