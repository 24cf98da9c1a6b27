package httputil

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	transient := &RetryableError{Err: errors.New("transient")}
	permanent := errors.New("permanent")

	tests := []struct {
		name      string
		results   []error
		wantCalls int
		wantErr   error
	}{
		{"success", []error{nil}, 1, nil},
		{"retry then success", []error{transient, nil}, 2, nil},
		{"permanent stops", []error{permanent, nil}, 1, permanent},
		{"exhausted", []error{transient, transient, transient}, 3, transient.Err},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), 3, time.Millisecond, func() error {
				err := tt.results[calls]
				calls++
				return err
			})
			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, IsRetryable(err))
			}
		})
	}
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, 5, time.Hour, func() error {
		calls++
		cancel()
		return &RetryableError{Err: errors.New("down")}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryAtLeastOnce(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return nil
	})
	assert.Equal(t, 1, calls)
}
