package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "570", settings.LocationGroupID)
	assert.Equal(t, 10, settings.PlatformID)
	assert.Equal(t, 1, settings.MessageType)
	assert.Equal(t, "C", settings.Ownership)
	assert.True(t, settings.TestMode)
	assert.Equal(t, "uploads", settings.UploadDir)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macenroll.env")
	content := "LOCATIONGROUPID=999\nOWNERSHIP=E\nUSERNAME=svc-enroll\nPASSWORD=hunter2\nTESTMODE=false\nHOST=fileserver.example.org\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "999", settings.LocationGroupID)
	assert.Equal(t, "E", settings.Ownership)
	assert.Equal(t, "svc-enroll", settings.Credentials.Username)
	assert.Equal(t, "hunter2", settings.Credentials.Password)
	assert.False(t, settings.TestMode)
	assert.Equal(t, "fileserver.example.org", settings.Host)

	// Untouched fields keep their defaults.
	assert.Equal(t, 10, settings.PlatformID)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MACENROLL_PLATFORMID", "12")
	t.Setenv("MACENROLL_UPLOADDIR", "/tmp/out")

	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 12, settings.PlatformID)
	assert.Equal(t, "/tmp/out", settings.UploadDir)
}

func TestLoadUnreadableConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	assert.Error(t, err)
}
