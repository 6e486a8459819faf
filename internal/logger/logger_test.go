package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsystemOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer func() { require.NoError(t, SetLevel(DefaultLevel.String())) }()

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, Level())

	Get(SubsystemTags.SIGN).Debug("resampling nonce")
	assert.Contains(t, buf.String(), "subsystem=SIGN")
	assert.Contains(t, buf.String(), "resampling nonce")

	buf.Reset()
	require.NoError(t, SetLevel("warn"))
	Get(SubsystemTags.CURV).Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestSetLevelInvalid(t *testing.T) {
	before := Level()
	err := SetLevel("loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
	assert.Equal(t, before, Level())
}

func TestSupportedSubsystems(t *testing.T) {
	tags := SupportedSubsystems()
	assert.Equal(t, []string{"CMD", "CURV", "ECDH", "KGEN", "RAND", "SIGN"}, tags)
}
