package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentRequest struct {
	Text string `validate:"notblank,max=20"`
	Kind string `validate:"omitempty,oneof=tag comment"`
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&commentRequest{Text: "follow up"}))

	err := v.Validate(&commentRequest{Text: "   \t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Text failed notblank")
}

func TestValidate_ParamInMessage(t *testing.T) {
	v := New()

	err := v.Validate(&commentRequest{Text: "ok", Kind: "emotion"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kind failed oneof=tag comment")
}
