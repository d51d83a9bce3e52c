package simulationapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/house"
	"github.com/beka-birhanu/rumba/render"
	"github.com/beka-birhanu/rumba/service/i"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/gin-gonic/gin"
)

const (
	// maxCells caps the floor size a single request may ask for.
	maxCells = 1 << 16
	// maxFrameCells caps max_steps * rows * cols when frames are recorded.
	maxFrameCells = 1 << 20
)

// SimulationController runs one simulation per request.
type SimulationController struct {
	simulator i.Simulator
}

// NewSimulationController initializes a SimulationController.
func NewSimulationController(s i.Simulator) (*SimulationController, error) {
	if s == nil {
		return nil, errors.New("simulator is required")
	}
	return &SimulationController{simulator: s}, nil
}

// Register registers the simulation routes.
func (sc *SimulationController) Register(route *gin.RouterGroup) {
	simulations := route.Group("/simulations")
	{
		simulations.POST("", sc.simulate)
	}
}

// simulate runs the requested simulation and returns its outcome.
func (sc *SimulationController) simulate(ctx *gin.Context) {
	var request SimulationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Rows*request.Cols > maxCells {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "grid is too large"})
		return
	}
	if request.Frames && request.MaxSteps*request.Rows*request.Cols > maxFrameCells {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "too many frames requested, lower max_steps or the grid size"})
		return
	}

	var recorder *render.Recorder
	req := i.SimulationRequest{
		Params: simulation.Params{
			Size:      grid.Size{Rows: request.Rows, Cols: request.Cols},
			DirtSpots: *request.DirtSpots,
			MaxSteps:  request.MaxSteps,
		},
		Seed: request.Seed,
	}
	if request.Frames {
		recorder = render.NewRecorder()
		req.Sink = recorder
	}

	result, err := sc.simulator.Simulate(req)
	if err != nil {
		if isValidationErr(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while running simulation"})
		return
	}

	response := &SimulationResponse{
		ID:          result.ID,
		Seed:        result.Seed,
		Success:     result.Outcome.Success,
		StepsTaken:  result.Outcome.StepsTaken,
		MaxSteps:    result.Outcome.MaxSteps,
		InitialDirt: result.Outcome.InitialDirt,
		Cleaned:     result.Outcome.Cleaned,
		Remaining:   result.Outcome.Remaining,
		Report:      result.Outcome.Report(),
	}
	if recorder != nil {
		response.Frames = recorder.Snapshots()
	}

	ctx.JSON(http.StatusOK, response)
}

func isValidationErr(err error) bool {
	return errors.Is(err, grid.ErrInvalidSize) ||
		errors.Is(err, house.ErrNegativeDirt) ||
		errors.Is(err, simulation.ErrInvalidMaxSteps)
}
