package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/textris/constants"
	"github.com/lixenwraith/textris/input"
)

// Config holds the settings resolved from flags, environment and defaults
type Config struct {
	Layout input.Layout
	Width  int
	Height int
	Frame  time.Duration
	Debug  bool
	Mute   bool
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Layout: input.LayoutNormal,
		Width:  constants.FieldWidth,
		Height: constants.FieldHeight,
		Frame:  constants.FrameInterval,
	}
}

// Load resolves the configuration; precedence is flag, then environment, then default
// A `.env` file in the working directory is read when present
// Usage goes to stderr; -h returns flag.ErrHelp
func Load(args []string, stderr io.Writer) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	def := Default()
	fs := flag.NewFlagSet("textris", flag.ContinueOnError)
	fs.SetOutput(stderr)

	layout := GetEnv("TEXTRIS_KEYS", def.Layout.String())
	fs.StringVar(&layout, "k", layout, "key layout: normal or vim")
	fs.StringVar(&layout, "key", layout, "key layout: normal or vim")

	cfg := def
	fs.IntVar(&cfg.Width, "width", GetEnvAsInt("TEXTRIS_WIDTH", def.Width), "field width in cells")
	fs.IntVar(&cfg.Height, "height", GetEnvAsInt("TEXTRIS_HEIGHT", def.Height), "field height in cells")
	frameMS := GetEnvAsInt("TEXTRIS_FRAME_MS", int(def.Frame/time.Millisecond))
	fs.IntVar(&frameMS, "frame", frameMS, "frame interval in milliseconds")
	fs.BoolVar(&cfg.Debug, "debug", GetEnvAsBool("TEXTRIS_DEBUG", false), "write debug log to logs/")
	fs.BoolVar(&cfg.Mute, "mute", GetEnvAsBool("TEXTRIS_MUTE", false), "disable sound effects")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if cfg.Layout, err = input.ParseLayout(layout); err != nil {
		return Config{}, err
	}
	cfg.Frame = time.Duration(frameMS) * time.Millisecond

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field bounds and the frame interval
func (c Config) Validate() error {
	if c.Width < constants.MinFieldSize || c.Width > constants.MaxFieldSize {
		return fmt.Errorf("width %d out of range [%d, %d]", c.Width, constants.MinFieldSize, constants.MaxFieldSize)
	}
	if c.Height < constants.MinFieldSize || c.Height > constants.MaxFieldSize {
		return fmt.Errorf("height %d out of range [%d, %d]", c.Height, constants.MinFieldSize, constants.MaxFieldSize)
	}
	if c.Frame <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.Frame)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
