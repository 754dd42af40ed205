// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/models"
)

// ListState is the rendering state of a [ListFlow].
type ListState int

const (
	// ListLoading is shown until the first fetch settles.
	ListLoading ListState = iota
	// ListLoaded holds the fetched notes, newest first.
	ListLoaded
	// ListFailed holds the fetch error. It wins over any loaded notes.
	ListFailed
)

const emptyListMessage = "No notes yet, create your first!"

// ListResult is the outcome of one list fetch.
type ListResult struct {
	generation uint64
	ctx        context.Context

	Notes []models.Note
	Err   error
}

// ListView is an immutable snapshot of a [ListFlow].
type ListView struct {
	State ListState
	Notes []models.Note
	Err   error
}

// ListFlow fetches all notes and keeps them newest first.
//
// A reload does not reset the state: the previous notes stay visible until
// the new result arrives, and an error, once stored, keeps winning until
// [ListFlow.Reset].
type ListFlow struct {
	mu sync.Mutex

	adapter adapter.NotesAdapter

	ctx    context.Context
	cancel context.CancelFunc

	// generation identifies the latest request; older results are dropped.
	generation    uint64
	requestCancel context.CancelFunc

	notes  []models.Note
	loaded bool
	err    error
}

// NewListFlow creates a flow in the Loading state. Requests started by the
// flow are bound to ctx and to [ListFlow.Close].
func NewListFlow(ctx context.Context, notesAdapter adapter.NotesAdapter) *ListFlow {
	ctx, cancel := context.WithCancel(ctx)
	return &ListFlow{
		adapter: notesAdapter,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Reload starts a fetch and returns the function performing it. A fetch that
// is still running is cancelled and its result will be dropped.
func (f *ListFlow) Reload() func() ListResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.requestCancel != nil {
		f.requestCancel()
	}

	f.generation++
	generation := f.generation
	ctx, cancel := context.WithCancel(f.ctx)
	f.requestCancel = cancel

	return func() ListResult {
		notes, err := f.adapter.ListNotes(ctx)
		return ListResult{generation: generation, ctx: ctx, Notes: notes, Err: err}
	}
}

// Reset drops the stored notes and error, returns to Loading and starts a
// fresh fetch.
func (f *ListFlow) Reset() func() ListResult {
	f.mu.Lock()
	f.notes = nil
	f.loaded = false
	f.err = nil
	f.mu.Unlock()

	return f.Reload()
}

// Apply folds a fetch result into the state. It reports false when the
// result was dropped because a newer fetch started or the flow was closed.
// Successful results are reversed in place.
func (f *ListFlow) Apply(result ListResult) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if result.generation != f.generation || result.ctx == nil || result.ctx.Err() != nil {
		return false
	}
	f.requestCancel()
	f.requestCancel = nil

	if result.Err != nil {
		f.err = result.Err
		return true
	}

	slices.Reverse(result.Notes)
	f.notes = result.Notes
	f.loaded = true

	return true
}

// Load runs a reload synchronously and applies its result.
func (f *ListFlow) Load() ListView {
	f.Apply(f.Reload()())
	return f.View()
}

// View returns the current snapshot.
func (f *ListFlow) View() ListView {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.err != nil:
		return ListView{State: ListFailed, Err: f.err}
	case f.loaded:
		return ListView{State: ListLoaded, Notes: slices.Clone(f.notes)}
	default:
		return ListView{State: ListLoading}
	}
}

// Close cancels outstanding requests. Results arriving afterwards are
// dropped.
func (f *ListFlow) Close() {
	f.cancel()
}

// Status is the single line a front-end shows instead of the list, or ""
// when the notes themselves should be drawn.
func (v ListView) Status() string {
	switch v.State {
	case ListLoading:
		return loadingMessage
	case ListFailed:
		return "Error loading notes: " + v.Err.Error()
	}

	if len(v.Notes) == 0 {
		return emptyListMessage
	}
	return ""
}
