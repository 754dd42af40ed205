// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

const loadingMessage = "Loading..."

// ErrSubmitInFlight is returned when a submit is attempted while the
// previous one has not settled yet.
var ErrSubmitInFlight = errors.New("a note is already being created")

// CreateResult is the outcome of one create request.
type CreateResult struct {
	generation uint64
	ctx        context.Context

	Note models.Note
	Err  error
}

// CreateView is an immutable snapshot of a [CreateFlow]. Created, InFlight
// and Err are independent: a failure after a success leaves the old Created
// in place.
type CreateView struct {
	Title   string
	Content string

	Created  *models.Note
	InFlight bool
	Err      error
}

// CreateFlow owns the new-note form and its submission.
type CreateFlow struct {
	mu sync.Mutex

	adapter   adapter.NotesAdapter
	validator validators.Validator
	onCreated func()

	ctx    context.Context
	cancel context.CancelFunc

	generation uint64

	title   string
	content string

	created  *models.Note
	inFlight bool
	err      error
}

// NewCreateFlow creates an empty form. onCreated is called exactly once
// after every successful submit, after the fields were cleared; it is how
// the list learns it must refresh. It may be nil.
func NewCreateFlow(ctx context.Context, notesAdapter adapter.NotesAdapter, onCreated func()) *CreateFlow {
	ctx, cancel := context.WithCancel(ctx)
	return &CreateFlow{
		adapter:   notesAdapter,
		validator: validators.NewNoteValidator(),
		onCreated: onCreated,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (f *CreateFlow) SetTitle(title string) {
	f.mu.Lock()
	f.title = title
	f.mu.Unlock()
}

func (f *CreateFlow) SetContent(content string) {
	f.mu.Lock()
	f.content = content
	f.mu.Unlock()
}

// Submit marks the flow in flight and returns the function creating a note
// from the current title and content. While a submit is in flight further
// submits are refused with [ErrSubmitInFlight]. An empty title or content is
// refused without a request: the validation error is stored like a failed
// create and returned.
func (f *CreateFlow) Submit() (func() CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.inFlight {
		return nil, ErrSubmitInFlight
	}

	params := models.NoteCreateParams{Title: f.title, Content: f.content}
	if err := f.validator.Validate(f.ctx, params); err != nil {
		f.err = err
		return nil, err
	}

	f.inFlight = true
	f.generation++
	generation := f.generation
	ctx := f.ctx

	return func() CreateResult {
		note, err := f.adapter.CreateNote(ctx, params)
		return CreateResult{generation: generation, ctx: ctx, Note: note, Err: err}
	}, nil
}

// Apply folds a create result into the state. On success the note is
// stored, both fields are cleared and onCreated is called; on failure the
// error is stored and the fields are kept. In-flight is cleared either way.
// Results that arrive after [CreateFlow.Close] are dropped and false is
// returned.
func (f *CreateFlow) Apply(result CreateResult) bool {
	f.mu.Lock()

	if result.generation != f.generation || result.ctx == nil || result.ctx.Err() != nil {
		f.mu.Unlock()
		return false
	}
	f.inFlight = false

	if result.Err != nil {
		f.err = result.Err
		f.mu.Unlock()
		return true
	}

	note := result.Note
	f.created = &note
	f.title = ""
	f.content = ""
	onCreated := f.onCreated
	f.mu.Unlock()

	if onCreated != nil {
		onCreated()
	}

	return true
}

// SubmitAndWait runs a submit synchronously and applies its result.
func (f *CreateFlow) SubmitAndWait() (CreateView, error) {
	submit, err := f.Submit()
	if err != nil {
		return f.View(), err
	}

	f.Apply(submit())
	return f.View(), nil
}

// View returns the current snapshot.
func (f *CreateFlow) View() CreateView {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := CreateView{
		Title:    f.title,
		Content:  f.content,
		InFlight: f.inFlight,
		Err:      f.err,
	}
	if f.created != nil {
		created := *f.created
		view.Created = &created
	}

	return view
}

// Close cancels an outstanding submit. Its result will be dropped.
func (f *CreateFlow) Close() {
	f.cancel()
}

// StatusLines returns the status block under the form, in display order.
func (v CreateView) StatusLines() []string {
	var lines []string
	if v.Created != nil {
		lines = append(lines, fmt.Sprintf("Created note #%d", v.Created.ID))
	}
	if v.InFlight {
		lines = append(lines, loadingMessage)
	}
	if v.Err != nil {
		lines = append(lines, "Error creating note: "+v.Err.Error())
	}

	return lines
}
