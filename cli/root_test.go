package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "exlog", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"serve", "migrate"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestMigrateFlag(t *testing.T) {
	for _, args := range [][]string{{}, {"serve"}} {
		cmd := NewRootCommand()
		target, _, err := cmd.Find(args)
		require.NoError(t, err)

		flag := target.Flags().Lookup("migrate")
		require.NotNil(t, flag)
		assert.Equal(t, "false", flag.DefValue)
	}
}

func TestRejectsArguments(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"serve", "extra"})

	assert.Error(t, cmd.Execute())
}
