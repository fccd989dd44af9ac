package interactome

import (
	"errors"
	"fmt"

	"github.com/rablab/interactome/internal/membership"
	"github.com/rablab/interactome/model"
)

var (
	// ErrInvalidConfig is matched by every configuration error.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoCollections is returned when no collection is supplied.
	ErrNoCollections = fmt.Errorf("%w: at least one collection is required", ErrInvalidConfig)
)

// ErrDuplicateCollection indicates two collections share a name.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDuplicateCollection struct {
	Name  string
	cause error
}

func (e *ErrDuplicateCollection) Error() string {
	return fmt.Sprintf("invalid configuration: duplicate collection name %q", e.Name)
}

func (e *ErrDuplicateCollection) Unwrap() error { return e.cause }

// Is reports configuration errors.
func (e *ErrDuplicateCollection) Is(target error) bool { return target == ErrInvalidConfig }

// ErrUnsupportedMode indicates an unknown aggregation mode.
type ErrUnsupportedMode struct {
	Mode model.Mode
}

func (e *ErrUnsupportedMode) Error() string {
	return fmt.Sprintf("invalid configuration: unsupported mode %s", e.Mode)
}

// Is reports configuration errors.
func (e *ErrUnsupportedMode) Is(target error) bool { return target == ErrInvalidConfig }

// ErrTooManyCollections indicates more collections than a pattern can address.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTooManyCollections struct {
	Count int
	Max   int
	cause error
}

func (e *ErrTooManyCollections) Error() string {
	return fmt.Sprintf("invalid configuration: %d collections (max %d)", e.Count, e.Max)
}

func (e *ErrTooManyCollections) Unwrap() error { return e.cause }

// Is reports configuration errors.
func (e *ErrTooManyCollections) Is(target error) bool { return target == ErrInvalidConfig }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, membership.ErrNoCollections) {
		return fmt.Errorf("%w: %w", ErrNoCollections, err)
	}
	var dup *membership.ErrDuplicateName
	if errors.As(err, &dup) {
		return &ErrDuplicateCollection{Name: dup.Name, cause: err}
	}
	var tm *membership.ErrTooMany
	if errors.As(err, &tm) {
		return &ErrTooManyCollections{Count: tm.Count, Max: tm.Max, cause: err}
	}

	return err
}
