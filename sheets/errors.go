package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// Classification tells the retrier what to do with a failed request.
type Classification int

const (
	// Retryable failures are transient: network errors, rate limits, server errors.
	Retryable Classification = iota
	// Permanent failures won't get better by retrying.
	Permanent
	// EmptyResult failures mean that the requested range doesn't exist, which is treated as no data.
	EmptyResult
)

func (c Classification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case Permanent:
		return "permanent"
	case EmptyResult:
		return "empty-result"
	}
	return "unknown"
}

// Classifier maps a failure to a Classification.
type Classifier interface {
	Classify(err error) Classification
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(err error) Classification

func (f ClassifierFunc) Classify(err error) Classification {
	return f(err)
}

// DefaultClassifier classifies errors coming from the sheets API.
var DefaultClassifier Classifier = ClassifierFunc(classifyAPIError)

const rangeParseError = "unable to parse range"

func classifyAPIError(err error) Classification {
	if errors.Is(err, context.Canceled) {
		return Permanent
	}
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return Permanent
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		// Transport level failure.
		return Retryable
	}
	switch {
	case apiErr.Code == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Message), rangeParseError):
		return EmptyResult
	case apiErr.Code == http.StatusTooManyRequests,
		apiErr.Code == http.StatusRequestTimeout,
		apiErr.Code >= http.StatusInternalServerError:
		return Retryable
	}
	return Permanent
}

// StatusCode extracts the HTTP status of a failed remote call.
func StatusCode(err error) (int, bool) {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}

// ExhaustedRetriesError is returned once every attempt of an operation has failed.
type ExhaustedRetriesError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("giving up after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is returned when a response doesn't have the expected shape.
type MalformedResponseError struct {
	Resource string
	Table    string
	Row      int
	Column   int
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("malformed response for %s: %s", e.Resource, e.Reason)
	}
	return fmt.Sprintf("malformed response for %s/%s at row %d, column %d: %s",
		e.Resource, e.Table, e.Row, e.Column, e.Reason)
}
