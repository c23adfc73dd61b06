package timeutil

import (
	"math"
	"math/rand"
	"time"
)

// ComputeJitter returns a uniformly random duration in [0, max).
// A non-positive max yields 0.
func ComputeJitter(max time.Duration, rng *rand.Rand) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rng.Int63n(int64(max)))
}

// ExponentialBackoffDelay returns the delay before retry number backoffCount
// (1-based): initial * multiplier^(backoffCount-1), capped at the maximum,
// plus jitter. Counts below 1 are treated as 1.
func ExponentialBackoffDelay(
	backoffCount int,
	jitter time.Duration,
	rng *rand.Rand,
	backoffParam BackoffParam,
) time.Duration {
	if backoffCount < 1 {
		backoffCount = 1
	}
	delay := float64(backoffParam.InitialDuration()) *
		math.Pow(backoffParam.Multiplier(), float64(backoffCount-1))
	if maxDelay := float64(backoffParam.MaxDuration()); delay > maxDelay {
		delay = maxDelay
	}
	return time.Duration(delay) + ComputeJitter(jitter, rng)
}
