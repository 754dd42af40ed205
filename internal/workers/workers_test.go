// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that records Run and Stop calls into a shared journal.
type mockWorker struct {
	id      int
	runErr  error
	journal *[]string
}

func (m *mockWorker) Run() error {
	*m.journal = append(*m.journal, "run", string(rune('0'+m.id)))
	return m.runErr
}

func (m *mockWorker) Stop() {
	*m.journal = append(*m.journal, "stop", string(rune('0'+m.id)))
}

func TestWorkers_Run_Order(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&mockWorker{id: 1, journal: &journal},
		&mockWorker{id: 2, journal: &journal},
		&mockWorker{id: 3, journal: &journal},
	)

	require.NoError(t, ws.Run())
	assert.Equal(t, []string{"run", "1", "run", "2", "run", "3"}, journal)
}

func TestWorkers_Stop_ReverseOrder(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&mockWorker{id: 1, journal: &journal},
		&mockWorker{id: 2, journal: &journal},
	)

	ws.Stop()
	assert.Equal(t, []string{"stop", "2", "stop", "1"}, journal)
}

func TestWorkers_Run_FailureStopsStarted(t *testing.T) {
	var journal []string
	boom := errors.New("boom")
	ws := NewWorkers(
		&mockWorker{id: 1, journal: &journal},
		&mockWorker{id: 2, journal: &journal, runErr: boom},
		&mockWorker{id: 3, journal: &journal},
	)

	err := ws.Run()

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"run", "1", "run", "2", "stop", "1"}, journal)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NoError(t, ws.Run())
	ws.Stop()

	nilWorkers := &Workers{}
	assert.NoError(t, nilWorkers.Run())
}
