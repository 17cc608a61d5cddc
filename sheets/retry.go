package sheets

import (
	"context"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultMaxJitter = time.Second

// Retrier runs an operation until it succeeds, fails permanently or runs out of attempts.
// The delay after attempt n is BaseDelay * 2^(n-1) plus a random jitter.
type Retrier struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration
	Classifier  Classifier
	jitter      func(max time.Duration) time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      log.FieldLogger
}

// NewRetrier creates a retrier that classifies errors with the DefaultClassifier.
func NewRetrier(maxAttempts int, baseDelay time.Duration) *Retrier {
	return &Retrier{
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		MaxJitter:   defaultMaxJitter,
		Classifier:  DefaultClassifier,
		jitter:      randomJitter,
		sleep:       sleepContext,
		logger:      log.WithField("component", "retrier"),
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns the delay that follows the given failed attempt (1-based).
func (r *Retrier) Backoff(attempt int) time.Duration {
	delay := r.BaseDelay << uint(attempt-1)
	if r.jitter != nil {
		delay += r.jitter(r.MaxJitter)
	}
	return delay
}

func (r *Retrier) classify(err error) Classification {
	if r.Classifier == nil {
		return Retryable
	}
	return r.Classifier.Classify(err)
}

func (r *Retrier) wait(ctx context.Context, d time.Duration) error {
	if r.sleep == nil {
		return sleepContext(ctx, d)
	}
	return r.sleep(ctx, d)
}

func (r *Retrier) log() log.FieldLogger {
	if r.logger == nil {
		return log.StandardLogger()
	}
	return r.logger
}

// Do runs op. Errors that aren't retryable are returned as they are.
// When every attempt fails, an *ExhaustedRetriesError wrapping the last error is returned.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if ctx.Err() != nil || r.classify(err) != Retryable {
			return err
		}
		if attempt == attempts {
			break
		}
		delay := r.Backoff(attempt)
		r.log().
			WithFields(log.Fields{"attempt": attempt, "of": attempts, "delay": delay}).
			Debugf("Retrying after error: %v", err)
		if werr := r.wait(ctx, delay); werr != nil {
			return werr
		}
	}
	r.log().Warnf("Giving up after %d attempts: %v", attempts, err)
	return &ExhaustedRetriesError{Attempts: attempts, Err: err}
}
