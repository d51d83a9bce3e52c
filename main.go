package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/rumba/api"
	api_i "github.com/beka-birhanu/rumba/api/i"
	simulationapi "github.com/beka-birhanu/rumba/api/simulation"
	"github.com/beka-birhanu/rumba/config"
	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/logger"
	"github.com/beka-birhanu/rumba/metrics"
	"github.com/beka-birhanu/rumba/render"
	"github.com/beka-birhanu/rumba/service"
	"github.com/beka-birhanu/rumba/service/i"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
)

// Global variables for dependencies
var (
	cfg                  config.Config
	appLogger            *logger.Logger
	registry             *prometheus.Registry
	runMetrics           *metrics.Collector
	simulator            i.Simulator
	simulationController api_i.Controller
	router               *api.Router
)

func initConfig() {
	var err error
	cfg, err = config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] %v\n", err)
		os.Exit(2)
	}
}

func initLogger() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[APP] [FATAL] Creating logger: %v\n", err)
		os.Exit(1)
	}
}

func initMetrics() {
	var err error
	registry = prometheus.NewRegistry()
	runMetrics, err = metrics.New(registry)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Registering metrics: %v", err))
		os.Exit(1)
	}
	appLogger.Debug("Metrics initialized")
}

func initSimulator() {
	simLogger, err := logger.New("SIMULATION", config.ColorCyan, os.Stderr, cfg.LogLevel)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation logger: %v", err))
		os.Exit(1)
	}

	simulator, err = service.NewSimulationService(&service.SimulationConfig{
		Logger:   simLogger,
		Observer: runMetrics,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation service: %v", err))
		os.Exit(1)
	}
	appLogger.Debug("Simulation service initialized")
}

func initSimulationController() {
	var err error
	simulationController, err = simulationapi.NewSimulationController(simulator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating simulation controller: %v", err))
		os.Exit(1)
	}
	appLogger.Debug("Simulation controller initialized")
}

func initRouter() {
	httpLogger, err := logger.New("HTTP", config.ColorMagenta, os.Stderr, cfg.LogLevel)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating http logger: %v", err))
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        cfg.Addr(),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{simulationController},
		Gatherer:    registry,
		Logger:      httpLogger,
	})
	appLogger.Debug("Router initialized")
}

// openRenderOutput returns the writer for rendered frames and its closer.
func openRenderOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// runOnce executes a single simulation and prints its report.
func runOnce() int {
	out, closeOut, err := openRenderOutput(cfg.RenderOut)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Opening render output: %v", err))
		return 1
	}
	defer func() {
		if err := closeOut(); err != nil {
			appLogger.Error(fmt.Sprintf("Closing render output: %v", err))
		}
	}()

	renderer, err := render.New(cfg.Render, out)
	if err != nil {
		appLogger.Error(err.Error())
		return 2
	}

	req := i.SimulationRequest{
		Params: simulation.Params{
			Size:      grid.Size{Rows: cfg.Rows, Cols: cfg.Cols},
			DirtSpots: cfg.DirtSpots,
			MaxSteps:  cfg.MaxSteps,
		},
		Seed: cfg.Seed,
	}
	if renderer != nil {
		req.Sink = renderer
	}

	result, err := simulator.Simulate(req)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Running simulation: %v", err))
		return 2
	}

	if renderer != nil {
		if err := renderer.Flush(); err != nil {
			appLogger.Warning(fmt.Sprintf("Flushing renderer: %v", err))
		}
	}

	fmt.Println(result.Outcome.Report())
	return 0
}

func main() {
	initConfig()
	initLogger()
	initMetrics()
	initSimulator()

	if cfg.Mode == config.ModeRun {
		os.Exit(runOnce())
	}

	initSimulationController()
	initRouter()

	// Run HTTP server
	appLogger.Info(fmt.Sprintf("Serving simulations on %s", cfg.Addr()))
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
