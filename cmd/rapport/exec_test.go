package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestCompleteCommandWord(t *testing.T) {
	cases := []struct {
		name       string
		args       []string
		toComplete string
		want       []string
	}{
		{"first word", nil, "de", []string{"delete"}},
		{"second word", []string{"add"}, "", []string{"contact", "meeting", "note"}},
		{"third word", []string{"delete", "contact"}, "", []string{"note"}},
		{"no match", []string{"view"}, "x", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, directive := completeCommandWord(execCmd, tc.args, tc.toComplete)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}
