package external

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"

	"github.com/teemow/rendezvous/internal/logging"
)

// Policy decides what a pipeline does when its fetch fails.
type Policy int

const (
	// FailOpen logs the failure and continues as if the tool returned nothing.
	FailOpen Policy = iota
	// Strict propagates the failure to the caller.
	Strict
)

// PolicyFor returns Strict when strict is set, FailOpen otherwise.
func PolicyFor(strict bool) Policy {
	if strict {
		return Strict
	}
	return FailOpen
}

func (p Policy) String() string {
	switch p {
	case FailOpen:
		return "fail-open"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Failure reasons reported by Outcome.Reason.
const (
	ReasonNone       = ""
	ReasonExitStatus = "exit_status"
	ReasonNotFound   = "not_found"
	ReasonCanceled   = "canceled"
	ReasonError      = "error"
)

// Outcome is the result of one fetch: the records it produced, or the
// error that stopped it.
type Outcome[T any] struct {
	Items []T
	Err   error
}

// Success wraps the records of a fetch that completed.
func Success[T any](items []T) Outcome[T] {
	return Outcome[T]{Items: items}
}

// Failure wraps the error of a fetch that did not complete.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{Err: err}
}

// Failed reports whether the fetch failed.
func (o Outcome[T]) Failed() bool {
	return o.Err != nil
}

// Reason classifies the failure for logs and metrics.
func (o Outcome[T]) Reason() string {
	if o.Err == nil {
		return ReasonNone
	}
	if errors.Is(o.Err, context.Canceled) || errors.Is(o.Err, context.DeadlineExceeded) {
		return ReasonCanceled
	}
	if errors.Is(o.Err, exec.ErrNotFound) || errors.Is(o.Err, fs.ErrNotExist) {
		return ReasonNotFound
	}
	var cerr *CommandError
	if errors.As(o.Err, &cerr) && cerr.ExitCode > 0 {
		return ReasonExitStatus
	}
	return ReasonError
}

// Resolve applies policy to the outcome. Under FailOpen a failure is logged
// and an empty, non-nil slice is returned; under Strict the error is returned.
func (o Outcome[T]) Resolve(policy Policy, logger logging.Logger) ([]T, error) {
	if !o.Failed() {
		if o.Items == nil {
			return []T{}, nil
		}
		return o.Items, nil
	}

	if policy == Strict {
		return nil, o.Err
	}

	if logger != nil {
		args := []any{
			logging.Status(logging.StatusError),
			logging.Err(o.Err),
			"reason", o.Reason(),
			"policy", policy.String(),
		}
		var cerr *CommandError
		if errors.As(o.Err, &cerr) {
			args = append(args, logging.Command(filepath.Base(cerr.Name)))
		}
		logger.Error("external command failed, continuing with no data", args...)
	}
	return []T{}, nil
}
