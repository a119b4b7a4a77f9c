package cache

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		failures  int
		err       error
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{"first try", 0, nil, 3, 1, false},
		{"recovers", 2, &transientError{err: boom}, 3, 3, false},
		{"exhausted", 5, &transientError{err: boom}, 3, 3, true},
		{"permanent", 5, boom, 3, 1, true},
		{"zero attempts runs once", 5, boom, 0, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retry(context.Background(), tt.attempts, time.Millisecond, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := retry(ctx, 3, time.Hour, func() error {
		return &transientError{err: errors.New("down")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	netErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	if !errors.As(classify(netErr), new(*transientError)) {
		t.Error("network errors should be transient")
	}
	if errors.As(classify(errors.New("WRONGPASS")), new(*transientError)) {
		t.Error("protocol errors should not be transient")
	}
}
