package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() *cobra.Command {
	root := NewRootCommand()
	root.AddCommand(NewMigrateCommand())
	root.AddCommand(NewSeedCommand())
	return root
}

func TestCommandTree(t *testing.T) {
	root := newTestRoot()

	for _, path := range [][]string{
		{"migrate"},
		{"migrate", "status"},
		{"seed", "templates"},
		{"seed", "scales"},
		{"seed", "themes"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestSeedScalesRequiresCompany(t *testing.T) {
	root := newTestRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "scales"})

	err := root.ExecuteContext(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"company" not set`)
}

func TestSeedScalesRejectsMalformedCompany(t *testing.T) {
	root := newTestRoot()
	root.SetArgs([]string{"seed", "scales", "--company", "acme"})

	err := root.ExecuteContext(context.Background())

	require.Error(t, err)
}

func TestOpenEnvRequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "development")

	_, err := openEnv(context.Background())

	require.EqualError(t, err, "DATABASE_URL is required")
}
