package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/service/i"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/google/uuid"
)

var (
	ErrNilLogger = errors.New("logger is required")
)

// SimulationService runs simulations and reports them to the logger and observer.
type SimulationService struct {
	logger   i.Logger
	observer i.RunObserver
	newID    func() uuid.UUID
	now      func() time.Time
}

// SimulationConfig wires a SimulationService.
type SimulationConfig struct {
	Logger   i.Logger
	Observer i.RunObserver // optional
}

var _ i.Simulator = (*SimulationService)(nil)

func NewSimulationService(c *SimulationConfig) (*SimulationService, error) {
	if c == nil || c.Logger == nil {
		return nil, ErrNilLogger
	}

	return &SimulationService{
		logger:   c.Logger,
		observer: c.Observer,
		newID:    uuid.New,
		now:      time.Now,
	}, nil
}

// Simulate validates the request, runs it with a seeded source and records the outcome.
func (s *SimulationService) Simulate(req i.SimulationRequest) (*i.SimulationResult, error) {
	if err := req.Params.Validate(); err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected simulation: %v", err))
		return nil, err
	}

	seed := req.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	id := s.newID()
	s.logger.Info(fmt.Sprintf("Starting simulation: ID=%s Grid=%v Dirt=%d MaxSteps=%d Seed=%d",
		id, req.Params.Size, req.Params.DirtSpots, req.Params.MaxSteps, seed))

	started := s.now()
	outcome, err := simulation.Run(req.Params, grid.NewSource(seed), req.Sink)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Simulation %s failed: %v", id, err))
		return nil, err
	}

	if outcome.SinkErr != nil {
		s.logger.Warning(fmt.Sprintf("Simulation %s stopped rendering: %v", id, outcome.SinkErr))
	}
	s.logger.Info(fmt.Sprintf("Finished simulation: ID=%s Success=%t Steps=%d Cleaned=%d/%d Took=%s",
		id, outcome.Success, outcome.StepsTaken, len(outcome.Cleaned), outcome.InitialDirt, s.now().Sub(started)))

	if s.observer != nil {
		s.observer.Observe(outcome)
	}

	return &i.SimulationResult{
		ID:      id,
		Seed:    seed,
		Outcome: outcome,
	}, nil
}
