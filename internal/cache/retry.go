package cache

import (
	"context"
	"errors"

	"github.com/Eve04lim/recipe-manager-app/pkg/types"
)

// fetchWithRetry runs fn with the read retry policy: up to MaxRetries
// retries after the first attempt, delay doubling from RetryBaseDelay and
// capped at RetryMaxDelay. Only transient fetch failures are retried:
// absence is a definitive answer, structural store failures have their own
// recovery path, and canceled contexts are done. Mutations never pass
// through here.
func (c *Client) fetchWithRetry(ctx context.Context, fn fetchFunc) (any, error) {
	delay := c.opts.RetryBaseDelay
	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := c.sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
			if delay > c.opts.RetryMaxDelay {
				delay = c.opts.RetryMaxDelay
			}
		}
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, err
		}
		if errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
		if types.IsStructural(err) {
			return nil, err
		}
	}
	return nil, lastErr
}
