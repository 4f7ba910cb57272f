package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

// Defaults used when neither the environment nor the config file sets a value.
const (
	defaultWindowTitle      = "Pong"
	defaultFieldWidth       = 700
	defaultFieldHeight      = 650
	defaultPaddleHeight     = 200
	defaultPaddleWidth      = 30
	defaultPaddleStep       = 15
	defaultBallRadius       = 50
	defaultBallSpeedMin     = 1
	defaultBallSpeedMax     = 3
	defaultCountdownSeconds = 3
	defaultTicksPerSecond   = 60
	defaultLogLevel         = "debug"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.GetBallSpeedMax() < c.GetBallSpeedMin() {
		return fmt.Errorf("ball speed max %g is below min %g", c.GetBallSpeedMax(), c.GetBallSpeedMin())
	}
	return nil
}

// The window is sized to the playfield unless set explicitly.
func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}
	if windowWidth == 0 {
		windowWidth = int(c.GetFieldWidth())
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}
	if windowHeight == 0 {
		windowHeight = int(c.GetFieldHeight())
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}
	if len(windowTitle) == 0 {
		windowTitle = defaultWindowTitle
	}

	return windowTitle
}

func (c *Config) GetFieldWidth() float64 {
	return c.getFloat("FIELD_WIDTH", "field.width", defaultFieldWidth)
}

func (c *Config) GetFieldHeight() float64 {
	return c.getFloat("FIELD_HEIGHT", "field.height", defaultFieldHeight)
}

func (c *Config) GetPaddleHeight() float64 {
	return c.getFloat("PADDLE_HEIGHT", "paddle.height", defaultPaddleHeight)
}

func (c *Config) GetPaddleWidth() float64 {
	return c.getFloat("PADDLE_WIDTH", "paddle.width", defaultPaddleWidth)
}

// GetPaddleStep is how far a paddle moves for one key press.
func (c *Config) GetPaddleStep() float64 {
	return c.getFloat("PADDLE_STEP", "paddle.step", defaultPaddleStep)
}

func (c *Config) GetBallRadius() float64 {
	return c.getFloat("BALL_RADIUS", "ball.radius", defaultBallRadius)
}

func (c *Config) GetBallSpeedMin() float64 {
	return c.getFloat("BALL_SPEED_MIN", "ball.speed_min", defaultBallSpeedMin)
}

func (c *Config) GetBallSpeedMax() float64 {
	return c.getFloat("BALL_SPEED_MAX", "ball.speed_max", defaultBallSpeedMax)
}

func (c *Config) GetCountdownSeconds() int {
	countdownSeconds := c.config.GetInt("COUNTDOWN_SECONDS")
	if countdownSeconds == 0 {
		countdownSeconds = c.config.GetInt("game.countdown_seconds")
	}
	if countdownSeconds == 0 {
		countdownSeconds = defaultCountdownSeconds
	}

	return countdownSeconds
}

func (c *Config) GetTicksPerSecond() int {
	tps := c.config.GetInt("TICKS_PER_SECOND")
	if tps == 0 {
		tps = c.config.GetInt("game.ticks_per_second")
	}
	if tps == 0 {
		tps = defaultTicksPerSecond
	}

	return tps
}

// GetSeed seeds the serve velocity. 0 means a time based seed.
func (c *Config) GetSeed() int64 {
	seed := c.config.GetInt64("SEED")
	if seed == 0 {
		seed = c.config.GetInt64("game.seed")
	}

	return seed
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}
	if len(logLevel) == 0 {
		logLevel = defaultLogLevel
	}

	return logLevel
}

func (c *Config) getFloat(envKey, fileKey string, fallback float64) float64 {
	value := c.config.GetFloat64(envKey)
	if value == 0 {
		value = c.config.GetFloat64(fileKey)
	}
	if value == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
