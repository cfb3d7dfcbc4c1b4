package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	root := Root("1.2.3")
	require.Equal(t, "sqlfront", root.Name)
	require.Equal(t, "1.2.3", root.Version)

	names := make([]string, 0, len(root.Commands))
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	require.ElementsMatch(t, []string{"fmt", "check", "init"}, names)
}
