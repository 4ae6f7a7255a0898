// Package decision supplies the operator's daily inputs to the simulation.
package decision

import (
	"context"
	"errors"

	"RetailSim/internal/model"
)

// ErrExhausted is returned when a source has no more decisions.
var ErrExhausted = errors.New("decision source exhausted")

// Source yields one decision per simulated day.
type Source interface {
	Next(ctx context.Context) (model.Decision, error)
	Name() string
}
