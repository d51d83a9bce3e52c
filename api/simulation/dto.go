// Package simulationapi exposes simulation runs over HTTP.
package simulationapi

import (
	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/google/uuid"
)

// SimulationRequest is the body of a run request.
type SimulationRequest struct {
	Rows      int   `json:"rows" binding:"required,min=1,max=4096"`
	Cols      int   `json:"cols" binding:"required,min=1,max=4096"`
	DirtSpots *int  `json:"dirt_spots" binding:"required,min=0"`
	MaxSteps  int   `json:"max_steps" binding:"required,min=1,max=1000000"`
	Seed      int64 `json:"seed"`
	Frames    bool  `json:"frames"`
}

// SimulationResponse describes a finished run.
type SimulationResponse struct {
	ID          uuid.UUID             `json:"id"`
	Seed        int64                 `json:"seed"`
	Success     bool                  `json:"success"`
	StepsTaken  int                   `json:"steps_taken"`
	MaxSteps    int                   `json:"max_steps"`
	InitialDirt int                   `json:"initial_dirt"`
	Cleaned     []grid.Position       `json:"cleaned"`
	Remaining   []grid.Position       `json:"remaining"`
	Report      string                `json:"report"`
	Frames      []simulation.Snapshot `json:"frames,omitempty"`
}
