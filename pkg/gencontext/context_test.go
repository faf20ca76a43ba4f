package gencontext

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin_CarriesMetadata(t *testing.T) {
	ctx, cancel := Begin(context.Background(), "sess-1", "C100", 7, time.Minute)
	defer cancel()

	md := GetMetadata(ctx)
	assert.Equal(t, "sess-1", md.SessionID)
	assert.Equal(t, "C100", md.ContactID)
	assert.Equal(t, uint64(7), md.Epoch)
	assert.False(t, md.StartTime.IsZero())

	_, hasDeadline := ctx.Deadline()
	require.True(t, hasDeadline)
}

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("gateway returned status 503"), true},
		{fmt.Errorf("gateway returned status 429"), true},
		{fmt.Errorf("dial tcp: connection refused"), true},
		{fmt.Errorf("gateway returned status 400"), false},
		{errors.New("gateway error: conversation missing"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsRetryableError(tc.err), "%v", tc.err)
	}
}
