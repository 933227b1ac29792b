package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/regdom/regdom-go/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTableConfigBuiltin(t *testing.T) {
	var tc TableConfig
	tree, err := tc.Tree()
	require.NoError(t, err)
	domain, ok := tree.RegisteredDomain("www.example.com")
	assert.True(t, ok)
	assert.Equal(t, "example.com", domain)
}

func TestTableConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")
	require.NoError(t, os.WriteFile(path, []byte("(2:com,uk(1:co))"), 0o644))

	tc := TableConfig{Path: path}
	tree, err := tc.Tree()
	require.NoError(t, err)
	domain, ok := tree.RegisteredDomain("www.example.co.uk")
	assert.True(t, ok)
	assert.Equal(t, "example.co.uk", domain)
}

func TestTableConfigFileErrors(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		tc := TableConfig{Path: filepath.Join(t.TempDir(), "nonexistent")}
		_, err := tc.Tree()
		require.Error(t, err)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "table.txt")
		require.NoError(t, os.WriteFile(path, []byte("(2:com"), 0o644))
		tc := TableConfig{Path: path}
		_, err := tc.Tree()
		require.Error(t, err)
	})
}

func TestManagerDisabled(t *testing.T) {
	var sc Config
	_, err := sc.Manager(zap.NewNop())
	require.Error(t, err)
}

func TestManagerStartStop(t *testing.T) {
	sc := Config{
		API: api.Config{
			Enabled: true,
			Listeners: []api.ListenerConfig{
				{
					Network: "tcp",
					Address: "[::1]:0",
				},
			},
		},
	}
	m, err := sc.Manager(zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Start(t.Context()))
	m.Stop()
}
