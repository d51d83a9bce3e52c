package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
)

// Run modes.
const (
	ModeRun   = "run"
	ModeServe = "serve"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the application's configuration values.
type Config struct {
	Mode      string // run executes one simulation, serve starts the HTTP API
	Rows      int    // Number of grid rows
	Cols      int    // Number of grid columns
	DirtSpots int    // Requested number of dirt spots
	MaxSteps  int    // Step budget per simulation
	Seed      int64  // Random seed, 0 picks a time based seed
	Render    string // Snapshot renderer (none, ascii, geojson, proto)
	RenderOut string // Renderer output path, "-" for stdout
	HostIP    string // Host IP for the server
	RESTPort  int    // Port for the REST API
	GinMode   string // Mode for the Gin framework (e.g., release, debug, test)
	LogLevel  string // Minimum log level (debug, info, warn, error)
}

// Load reads .env if present, then the environment, then flags in args.
// Flags win over environment variables, which win over defaults.
func Load(args []string) (Config, error) {
	// Load .env file if available
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}

	cfg, err := fromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("rumba", flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "run a single simulation or serve the HTTP API (run, serve)")
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of grid rows")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "number of grid columns")
	fs.IntVar(&cfg.DirtSpots, "dirt", cfg.DirtSpots, "number of dirt spots to scatter")
	fs.IntVar(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "step budget of a simulation")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for a time based seed")
	fs.StringVar(&cfg.Render, "render", cfg.Render, "snapshot renderer (none, ascii, geojson, proto)")
	fs.StringVar(&cfg.RenderOut, "out", cfg.RenderOut, "renderer output file, - for stdout")
	fs.StringVar(&cfg.HostIP, "host", cfg.HostIP, "HTTP listen address")
	fs.IntVar(&cfg.RESTPort, "port", cfg.RESTPort, "HTTP listen port")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "minimum log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// fromEnv populates the Config struct from environment variables with defaults.
func fromEnv() (Config, error) {
	var errs []error
	intEnv := func(key string, def int) int {
		v, err := getEnvAsIntWithDefault(key, def)
		errs = append(errs, err)
		return v
	}

	cfg := Config{
		Mode:      getEnvWithDefault("MODE", ModeRun),
		Rows:      intEnv("GRID_ROWS", 10),
		Cols:      intEnv("GRID_COLS", 10),
		DirtSpots: intEnv("DIRT_SPOTS", 8),
		MaxSteps:  intEnv("MAX_STEPS", 100),
		Seed:      int64(intEnv("SEED", 0)),
		Render:    getEnvWithDefault("RENDER", "none"),
		RenderOut: getEnvWithDefault("RENDER_OUT", "-"),
		HostIP:    getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:  intEnv("REST_PORT", 8080),
		GinMode:   getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:  getEnvWithDefault("LOG_LEVEL", "info"),
	}
	return cfg, errors.Join(errs...)
}

// Validate rejects values no simulation can run with.
func (c Config) Validate() error {
	var problems []string
	if c.Mode != ModeRun && c.Mode != ModeServe {
		problems = append(problems, fmt.Sprintf("mode %q", c.Mode))
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		problems = append(problems, fmt.Sprintf("grid %dx%d", c.Rows, c.Cols))
	}
	if c.DirtSpots < 0 {
		problems = append(problems, fmt.Sprintf("dirt spots %d", c.DirtSpots))
	}
	if c.MaxSteps <= 0 {
		problems = append(problems, fmt.Sprintf("max steps %d", c.MaxSteps))
	}
	if c.RESTPort <= 0 || c.RESTPort > 65535 {
		problems = append(problems, fmt.Sprintf("port %d", c.RESTPort))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("%w: environment variable %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
