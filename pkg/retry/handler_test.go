package retry_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rohmanhakim/jsonld-kit/pkg/failure"
	"github.com/rohmanhakim/jsonld-kit/pkg/retry"
	"github.com/rohmanhakim/jsonld-kit/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockError is a mock implementation of failure.ClassifiedError for testing
type mockError struct {
	msg      string
	severity failure.Severity
}

func (m *mockError) Error() string {
	return m.msg
}

func (m *mockError) Severity() failure.Severity {
	return m.severity
}

func fastParams(attempts int) retry.RetryParam {
	return retry.NewRetryParam(
		0,
		42,
		attempts,
		timeutil.NewBackoffParam(time.Millisecond, 2.0, 5*time.Millisecond),
	)
}

func TestRetry_SuccessOnFirstAttempt(t *testing.T) {
	calls := 0

	result, err := retry.Retry(fastParams(3), func() (string, failure.ClassifiedError) {
		calls++
		return "ok", nil
	})

	require.Nil(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestRetry_RecoversAfterRecoverableErrors(t *testing.T) {
	calls := 0

	result, err := retry.Retry(fastParams(3), func() (int, failure.ClassifiedError) {
		calls++
		if calls < 3 {
			return 0, &mockError{msg: "disk full", severity: failure.SeverityRecoverable}
		}
		return 7, nil
	})

	require.Nil(t, err)
	assert.Equal(t, 7, result)
	assert.Equal(t, 3, calls)
}

func TestRetry_FatalErrorStopsImmediately(t *testing.T) {
	calls := 0
	fatal := &mockError{msg: "permission denied", severity: failure.SeverityFatal}

	_, err := retry.Retry(fastParams(5), func() (int, failure.ClassifiedError) {
		calls++
		return 0, fatal
	})

	assert.Equal(t, 1, calls)
	assert.Same(t, fatal, err)
}

func TestRetry_ExhaustedAttempts(t *testing.T) {
	calls := 0
	last := &mockError{msg: "disk full", severity: failure.SeverityRecoverable}

	_, err := retry.Retry(fastParams(3), func() (int, failure.ClassifiedError) {
		calls++
		return 0, last
	})

	assert.Equal(t, 3, calls)
	var retryErr *retry.RetryError
	require.True(t, errors.As(err, &retryErr))
	assert.Equal(t, retry.ErrExhaustedAttempts, retryErr.Cause)
	assert.Equal(t, failure.SeverityRecoverable, err.Severity())

	var inner *mockError
	require.True(t, errors.As(err, &inner))
	assert.Same(t, last, inner)
}

func TestRetry_ZeroAttempts(t *testing.T) {
	calls := 0

	_, err := retry.Retry(fastParams(0), func() (int, failure.ClassifiedError) {
		calls++
		return 0, nil
	})

	assert.Equal(t, 0, calls)
	var retryErr *retry.RetryError
	require.True(t, errors.As(err, &retryErr))
	assert.Equal(t, retry.ErrZeroAttempt, retryErr.Cause)
}
