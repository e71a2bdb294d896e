package remote

import (
	"context"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshretry "github.com/cloudfoundry/bosh-utils/retrystrategy"
	"github.com/pkg/errors"
)

// Verifier confirms an uploaded object is listable at the destination. It
// probes the exact key up to maxAttempts times with a pause in between; once
// the attempts are exhausted it falls back to a directory listing filtered by
// the object's name, which catches objects an eventually consistent remote
// has not yet surfaced to direct probes.
type Verifier struct {
	store       Store
	maxAttempts int
	pause       time.Duration
	timeout     time.Duration
	logger      boshlog.Logger
}

func NewVerifier(store Store, maxAttempts int, pause, timeout time.Duration, logger boshlog.Logger) *Verifier {
	if maxAttempts <= 0 {
		maxAttempts = 2
	}
	if pause == 0 {
		pause = 5 * time.Second
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Verifier{store: store, maxAttempts: maxAttempts, pause: pause, timeout: timeout, logger: logger}
}

// Confirmation is the outcome of verifying one uploaded key. Only a direct
// probe counts as authoritative; a fallback-listing sighting means the direct
// probes never succeeded, so the object is probably there but the result
// stays advisory. Inconclusive means nothing saw the key, not that it is
// missing.
type Confirmation int

const (
	ConfirmationInconclusive Confirmation = iota
	ConfirmationProbed
	ConfirmationFallback
)

// Confirm probes the key directly and, once the attempts are exhausted,
// consults the fallback listing.
func (v *Verifier) Confirm(key string) Confirmation {
	retryable := boshretry.NewRetryable(func() (bool, error) {
		ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
		defer cancel()

		found, err := v.store.Exists(ctx, key)
		if err != nil {
			return true, errors.Wrapf(err, "existence probe for %s failed", key)
		}
		if !found {
			return true, errors.Errorf("%s is not listed at the destination yet", key)
		}
		return false, nil
	})

	strategy := boshretry.NewAttemptRetryStrategy(v.maxAttempts, v.pause, retryable, v.logger)
	if err := strategy.Try(); err == nil {
		return ConfirmationProbed
	}

	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	objects, err := v.store.List(ctx, key)
	if err != nil {
		v.logger.Warn("verify", "fallback listing for %s failed: %s", key, err.Error())
		return ConfirmationInconclusive
	}
	for _, object := range objects {
		if object.Key == key {
			return ConfirmationFallback
		}
	}
	return ConfirmationInconclusive
}
