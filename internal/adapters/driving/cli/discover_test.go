package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCmd_Use(t *testing.T) {
	assert.Equal(t, "discover [theme]", discoverCmd.Use)
}

func TestDiscoverCmd_Short(t *testing.T) {
	assert.Equal(t, "Ask the AI collaborator for palindromes", discoverCmd.Short)
}

func TestDiscoverCmd_HasLimitFlag(t *testing.T) {
	flag := discoverCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestDiscoverCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"discover", "nature"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Discovered 2 palindrome(s)")
	assert.Contains(t, buf.String(), "אבא")
	assert.Contains(t, buf.String(), "folk saying")
	assert.Contains(t, buf.String(), "1 proposal(s) failed verification")
}

func TestDiscoverCmd_ExecutesWithoutTheme(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"discover"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Discovered 2 palindrome(s)")
}

func TestDiscoverCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"discover", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		discoverJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Items\"")
	assert.Contains(t, buf.String(), "\"Rejected\"")
}

func TestDiscoverCmd_ServiceNotConfigured(t *testing.T) {
	oldService := discoveryService
	discoveryService = nil
	defer func() {
		discoveryService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"discover"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "discovery service not configured")
}

func TestDiscoverCmd_ServiceError(t *testing.T) {
	oldService := discoveryService
	discoveryService = &mockDiscoveryServiceError{}
	defer func() {
		discoveryService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"discover"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "discovery failed")
}
