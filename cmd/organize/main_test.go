package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		remaining []string
		json      bool
		quiet     bool
	}{
		{"no flags", []string{"run", "/tmp"}, []string{"run", "/tmp"}, false, false},
		{"json", []string{"--json", "run", "/tmp"}, []string{"run", "/tmp"}, true, false},
		{"quiet long", []string{"run", "--quiet", "/tmp"}, []string{"run", "/tmp"}, false, true},
		{"quiet short", []string{"-q", "undo", "log.txt"}, []string{"undo", "log.txt"}, false, true},
		{"both anywhere", []string{"run", "/tmp", "--json", "-q"}, []string{"run", "/tmp"}, true, true},
		{"command flags pass through", []string{"run", "/tmp", "--dry-run"}, []string{"run", "/tmp", "--dry-run"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outputCfg = OutputConfig{}
			remaining := parseGlobalFlags(tt.args)

			assert.Equal(t, tt.remaining, remaining)
			assert.Equal(t, tt.json, outputCfg.JSON)
			assert.Equal(t, tt.quiet, outputCfg.Quiet)
		})
	}
}
