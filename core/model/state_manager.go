// Package model provides estimator interfaces and fitted-state bookkeeping.
package model

import (
	"sync"

	"github.com/YuminosukeSato/linml/pkg/errors"
)

// StateManager tracks whether an estimator has been trained and the shape of
// the data it was trained on. Estimators hold one by composition.
type StateManager struct {
	mu sync.RWMutex

	fitted    bool
	nFeatures int
	nSamples  int
}

// NewStateManager creates a new StateManager in the untrained state.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been trained.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// Commit marks the model as trained on data of the given shape. nFeatures is
// the raw feature count, before bias augmentation.
func (s *StateManager) Commit(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// Reset returns the state to untrained.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
}

// Dimensions returns the number of features and samples seen during training.
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// RequireFitted returns a NotFittedError naming modelName and method if the
// model has not been trained.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

// RequireFeatures checks that X has as many columns as the training data.
func (s *StateManager) RequireFeatures(op string, got int) error {
	nFeatures, _ := s.Dimensions()
	if got != nFeatures {
		return errors.NewDimensionError(op, nFeatures, got, 1)
	}
	return nil
}
