package remote

import (
	"context"
	"time"
)

type Counter struct {
	store        Store
	pattern      string
	sidecarGlobs []string
	timeout      time.Duration
}

func NewCounter(store Store, pattern string, sidecarGlobs []string, timeout time.Duration) Counter {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return Counter{store: store, pattern: pattern, sidecarGlobs: sidecarGlobs, timeout: timeout}
}

func (c Counter) CountArtifacts() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	objects, err := c.store.List(ctx, c.pattern)
	if err != nil {
		return 0, err
	}
	return len(excludeSidecars(objects, c.sidecarGlobs)), nil
}
