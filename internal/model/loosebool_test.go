package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseBoolUnmarshalParam(t *testing.T) {
	trueTokens := []string{"1", "true", "TRUE", "True", "on", "On", "yes", "YES"}
	for _, token := range trueTokens {
		var b LooseBool
		require.NoError(t, b.UnmarshalParam(token), "token %q", token)
		assert.True(t, b.Bool(), "token %q", token)
	}

	falseTokens := []string{"0", "false", "FALSE", "off", "Off", "no", "NO"}
	for _, token := range falseTokens {
		var b LooseBool
		require.NoError(t, b.UnmarshalParam(token), "token %q", token)
		assert.False(t, b.Bool(), "token %q", token)
	}

	for _, token := range []string{"", "2", "maybe", "yess", "t"} {
		var b LooseBool
		assert.Error(t, b.UnmarshalParam(token), "token %q", token)
	}
}
