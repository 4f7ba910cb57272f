package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocalFile(t *testing.T) {
	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, "Pong", cfg.GetWindowTitle())
	assert.Equal(t, 700, cfg.GetWindowWidth())
	assert.Equal(t, 650, cfg.GetWindowHeight())
	assert.Equal(t, 700.0, cfg.GetFieldWidth())
	assert.Equal(t, 650.0, cfg.GetFieldHeight())
	assert.Equal(t, 200.0, cfg.GetPaddleHeight())
	assert.Equal(t, 30.0, cfg.GetPaddleWidth())
	assert.Equal(t, 6.0, cfg.GetPaddleStep())
	assert.Equal(t, 50.0, cfg.GetBallRadius())
	assert.Equal(t, 2.0, cfg.GetBallSpeedMin())
	assert.Equal(t, 4.0, cfg.GetBallSpeedMax())
	assert.Equal(t, 3, cfg.GetCountdownSeconds())
	assert.Equal(t, 60, cfg.GetTicksPerSecond())
	assert.Equal(t, int64(0), cfg.GetSeed())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("PADDLE_STEP", "9")
	t.Setenv("BALL_RADIUS", "12.5")
	t.Setenv("SEED", "1234")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("WINDOW_TITLE", "Rally")

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 9.0, cfg.GetPaddleStep())
	assert.Equal(t, 12.5, cfg.GetBallRadius())
	assert.Equal(t, int64(1234), cfg.GetSeed())
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.Equal(t, "Rally", cfg.GetWindowTitle())
}

func TestEnvSelectsConfigFile(t *testing.T) {
	t.Setenv("ENV", "local")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.GetPaddleStep())
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "Pong", cfg.GetWindowTitle())
	assert.Equal(t, 700.0, cfg.GetFieldWidth())
	assert.Equal(t, 650.0, cfg.GetFieldHeight())
	assert.Equal(t, 15.0, cfg.GetPaddleStep())
	assert.Equal(t, 50.0, cfg.GetBallRadius())
	assert.Equal(t, 1.0, cfg.GetBallSpeedMin())
	assert.Equal(t, 3.0, cfg.GetBallSpeedMax())
	assert.Equal(t, 3, cfg.GetCountdownSeconds())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestWindowFollowsField(t *testing.T) {
	t.Setenv("FIELD_WIDTH", "800")
	t.Setenv("FIELD_HEIGHT", "600")

	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.GetWindowWidth())
	assert.Equal(t, 600, cfg.GetWindowHeight())
}

func TestLoadRejectsInvertedSpeedRange(t *testing.T) {
	t.Setenv("BALL_SPEED_MIN", "5")
	t.Setenv("BALL_SPEED_MAX", "1")

	_, err := Load("local")
	assert.Error(t, err)
}
