package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	// Save and restore version
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()
	defer rootCmd.SetArgs(nil)

	out, err := execute("version")

	assert.NoError(t, err)
	assert.Contains(t, out, "advent version test-version-1.0.0")
}

func TestVersionCmd_SkipsBootstrap(t *testing.T) {
	SetServices(&Services{})
	original := bootstrap
	called := false
	bootstrap = func(string) (*Services, error) {
		called = true
		return &Services{}, nil
	}
	defer func() { bootstrap = original }()
	defer rootCmd.SetArgs(nil)

	_, err := execute("version")

	assert.NoError(t, err)
	assert.False(t, called)
}
