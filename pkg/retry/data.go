package retry

import (
	"time"

	"github.com/rohmanhakim/jsonld-kit/pkg/timeutil"
)

// RetryParam is the policy Retry runs under. Config builds it for artifact
// writes; Retry never reads configuration itself.
type RetryParam struct {
	// Jitter bounds the random delay added on top of each backoff.
	Jitter time.Duration
	// RandomSeed seeds the jitter source so a run can be replayed.
	RandomSeed int64
	// MaxAttempts counts the first call. Values below 1 are rejected by Retry.
	MaxAttempts  int
	BackoffParam timeutil.BackoffParam
}

func NewRetryParam(
	jitter time.Duration,
	randomSeed int64,
	maxAttempts int,
	backoff timeutil.BackoffParam,
) RetryParam {
	return RetryParam{
		Jitter:       jitter,
		RandomSeed:   randomSeed,
		MaxAttempts:  maxAttempts,
		BackoffParam: backoff,
	}
}
