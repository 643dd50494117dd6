package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	cases := map[string]string{
		`prefix {"a":1} suffix`:        `{"a":1}`,
		`{"a":{"b":"}"}} trailing {}`:  `{"a":{"b":"}"}}`,
		`{"s":"quote \" and { brace"}`: `{"s":"quote \" and { brace"}`,
		`no object here`:               ``,
		`{"unterminated": true`:        ``,
	}
	for in, want := range cases {
		assert.Equal(t, want, firstJSONObject(in), in)
	}
}

func TestDecodeLLMJSON_StripsFences(t *testing.T) {
	var out struct {
		OK bool `json:"ok"`
	}
	raw := "\uFEFF```json\n{\"ok\": true}\n```"

	require.NoError(t, decodeLLMJSON(raw, &out))
	assert.True(t, out.OK)
}

func TestDecodeLLMJSON_NoObject(t *testing.T) {
	var out map[string]any
	assert.ErrorIs(t, decodeLLMJSON("sorry, I can't help", &out), errNoJSONObject)
}
