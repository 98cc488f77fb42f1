package input

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptTrimsAndDefaults(t *testing.T) {
	var out bytes.Buffer
	svc := NewTestService(strings.NewReader("  hello  \n\n"), &out)

	got, err := svc.Prompt(context.Background(), "Name", "")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	got, err = svc.Prompt(context.Background(), "Name", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"No\n", false},
		{"maybe\ny\n", true}, // re-prompts on garbage
	}

	for _, tc := range tests {
		var out bytes.Buffer
		svc := NewTestService(strings.NewReader(tc.input), &out)

		got, err := svc.Confirm(context.Background(), "Proceed? (y/n)", "")
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

func TestSelect(t *testing.T) {
	options := []string{"alpha", "beta", "gamma"}

	var out bytes.Buffer
	svc := NewTestService(strings.NewReader("2\n"), &out)
	idx, err := svc.Select(context.Background(), "Pick one", "Choice", options, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	svc = NewTestService(strings.NewReader("9\n3\n"), &out)
	idx, err = svc.Select(context.Background(), "Pick one", "Choice", options, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	svc = NewTestService(strings.NewReader("q\n"), &out)
	_, err = svc.Select(context.Background(), "Pick one", "Choice", options, -1)
	assert.ErrorIs(t, err, ErrInputCanceled)
}

func TestSelectStringUsesDefault(t *testing.T) {
	options := []string{"PROD", "DEV"}

	var out bytes.Buffer
	svc := NewTestService(strings.NewReader("\n"), &out)
	got, err := svc.SelectString(context.Background(), "", "Env", options, "DEV")
	require.NoError(t, err)
	assert.Equal(t, "DEV", got)
}

func TestPromptCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewTestService(strings.NewReader("x\n"), &bytes.Buffer{})
	_, err := svc.Prompt(ctx, "Name", "")
	assert.ErrorIs(t, err, context.Canceled)
}
