package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSum(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: nil, want: "0\n"},
		{name: "single positive", args: []string{"4"}, want: "6\n"},
		{name: "mixed", args: []string{"4", "-2", "3"}, want: "9\n"},
		{name: "only non-positive", args: []string{"-5", "-1", "0"}, want: "0\n"},
		{name: "one contributes nothing", args: []string{"1"}, want: "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)

			cmd, buf := newTestCmd()
			require.NoError(t, runSum(cmd, tt.args))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRunSumInvalidArg(t *testing.T) {
	isolateConfig(t)

	cmd, _ := newTestCmd()
	err := runSum(cmd, []string{"4", "abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid integer "abc"`)
}
