package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeRetryBackoff(t *testing.T) {
	cases := []struct {
		attempts int
		want     time.Duration
	}{
		{1, 30 * time.Second},
		{2, time.Minute},
		{3, 2 * time.Minute},
		{4, 4 * time.Minute},
		{5, 8 * time.Minute},
		{6, 10 * time.Minute}, // capped
		{20, 10 * time.Minute},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, computeRetryBackoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}
