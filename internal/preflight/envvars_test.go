package preflight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avep-labs/avep/internal/config"
)

func TestCheckEnv_DefaultOptionalVars(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want []Line
	}{
		{
			name: "none set",
			env:  nil,
			want: []Line{
				{Status: StatusInfo, Text: "USER_PRIVATE_KEY (not set, default will be used)"},
				{Status: StatusInfo, Text: "RPC_URL (not set, default will be used)"},
			},
		},
		{
			name: "both set",
			env:  map[string]string{"USER_PRIVATE_KEY": "0xabc", "RPC_URL": "https://rpc.example"},
			want: []Line{
				{Status: StatusPass, Text: "USER_PRIVATE_KEY (set)"},
				{Status: StatusPass, Text: "RPC_URL (set)"},
			},
		},
		{
			name: "empty value is unset",
			env:  map[string]string{"USER_PRIVATE_KEY": ""},
			want: []Line{
				{Status: StatusInfo, Text: "USER_PRIVATE_KEY (not set, default will be used)"},
				{Status: StatusInfo, Text: "RPC_URL (not set, default will be used)"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: the environment
			checker, _ := newTestChecker(t, "", WithLookupEnv(envOf(tt.env)))

			// When: checking variables
			r := checker.CheckEnv(context.Background())

			// Then: optional variables are never counted
			assert.Equal(t, tt.want, r.Lines)
			assert.Equal(t, 0, r.Errors)
			assert.Equal(t, 0, r.Warnings)
		})
	}
}

func TestCheckEnv_RequiredUnsetIsOneErrorEach(t *testing.T) {
	// Given: two required variables, one set
	cfg := config.NewConfig()
	cfg.Env.Vars = []config.EnvVar{
		{Name: "USER_PRIVATE_KEY", Required: true},
		{Name: "RPC_URL", Required: true},
		{Name: "CHAIN_ID", Required: true},
	}
	checker, _ := newTestChecker(t, "",
		WithConfig(cfg),
		WithLookupEnv(envOf(map[string]string{"RPC_URL": "https://rpc.example"})))

	// When: checking variables
	r := checker.CheckEnv(context.Background())

	// Then: each unset required variable is exactly one error
	assert.Equal(t, 2, r.Errors)
	require.Len(t, r.Lines, 3)
	assert.Equal(t, "USER_PRIVATE_KEY (required but not set)", r.Lines[0].Text)
	assert.Equal(t, StatusPass, r.Lines[1].Status)
	assert.Contains(t, r.Lines[2].Detail, "ERR_604_ENV_VAR_MISSING")
}

func TestCheckEnv_ValuesNeverPrinted(t *testing.T) {
	// Given: a secret in the environment
	checker, buf := newTestChecker(t, "",
		WithLookupEnv(envOf(map[string]string{"USER_PRIVATE_KEY": "0xdeadbeef"})),
		WithVerbose(true))

	// When: running everything
	checker.Run(context.Background())

	// Then: the value does not appear in output
	assert.NotContains(t, buf.String(), "0xdeadbeef")
}

func TestLookupWithFallback(t *testing.T) {
	primary := envOf(map[string]string{"A": "process", "B": ""})
	lookup := LookupWithFallback(primary, map[string]string{"A": "file", "B": "file", "C": "file"})

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"A", "process", true},
		{"B", "file", true},
		{"C", "file", true},
		{"D", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookup(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
