// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testNotes(ids ...int) []models.Note {
	notes := make([]models.Note, 0, len(ids))
	for _, id := range ids {
		notes = append(notes, models.Note{ID: id, Title: "t", Content: "c", CreatedAt: "2024-01-01T00:00:00Z"})
	}
	return notes
}

func noteIDs(notes []models.Note) []int {
	ids := make([]int, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ID)
	}
	return ids
}

func TestListFlow_InitiallyLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := NewListFlow(context.Background(), mock.NewMockNotesAdapter(ctrl))

	view := flow.View()

	assert.Equal(t, ListLoading, view.State)
	assert.Equal(t, "Loading...", view.Status())
}

func TestListFlow_ReversesReturnedOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1, 2), nil)

	view := NewListFlow(context.Background(), notesAdapter).Load()

	require.Equal(t, ListLoaded, view.State)
	assert.Equal(t, []int{2, 1}, noteIDs(view.Notes))
	assert.Empty(t, view.Status())
}

func TestListFlow_ReverseTwiceRestoresOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1, 2, 3), nil).Times(2)

	flow := NewListFlow(context.Background(), notesAdapter)
	first := flow.Load()
	second := flow.Load()

	// every fetch is reversed exactly once, independent of earlier loads
	assert.Equal(t, []int{3, 2, 1}, noteIDs(first.Notes))
	assert.Equal(t, []int{3, 2, 1}, noteIDs(second.Notes))
}

func TestListFlow_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return([]models.Note{}, nil)

	view := NewListFlow(context.Background(), notesAdapter).Load()

	assert.Equal(t, ListLoaded, view.State)
	assert.Equal(t, "No notes yet, create your first!", view.Status())
}

func TestListFlow_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(nil, &models.APIError{Code: "internal", Message: "boom"})

	view := NewListFlow(context.Background(), notesAdapter).Load()

	assert.Equal(t, ListFailed, view.State)
	assert.Equal(t, "Error loading notes: API error: internal - boom", view.Status())
}

func TestListFlow_ErrorWinsOverLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	gomock.InOrder(
		notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1), nil),
		notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(nil, errors.New("offline")),
		notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1, 2), nil),
	)

	flow := NewListFlow(context.Background(), notesAdapter)
	require.Equal(t, ListLoaded, flow.Load().State)

	// a failing refresh replaces the list
	assert.Equal(t, ListFailed, flow.Load().State)

	// and stays until the flow is reset
	assert.Equal(t, ListFailed, flow.Load().State)
}

func TestListFlow_RefreshKeepsPreviousState(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1), nil)

	flow := NewListFlow(context.Background(), notesAdapter)
	flow.Load()

	_ = flow.Reload()

	view := flow.View()
	assert.Equal(t, ListLoaded, view.State)
	assert.Equal(t, []int{1}, noteIDs(view.Notes))
}

func TestListFlow_ResetReturnsToLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	gomock.InOrder(
		notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(nil, errors.New("offline")),
		notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(4), nil),
	)

	flow := NewListFlow(context.Background(), notesAdapter)
	require.Equal(t, ListFailed, flow.Load().State)

	fetch := flow.Reset()
	assert.Equal(t, ListLoading, flow.View().State)

	require.True(t, flow.Apply(fetch()))
	assert.Equal(t, []int{4}, noteIDs(flow.View().Notes))
}

func TestListFlow_DropsSupersededResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Note, error) {
		return testNotes(1), nil
	})
	notesAdapter.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Note, error) {
		return testNotes(1, 2), nil
	})

	flow := NewListFlow(context.Background(), notesAdapter)
	older := flow.Reload()
	newer := flow.Reload()

	olderResult := older()
	newerResult := newer()

	assert.True(t, flow.Apply(newerResult))
	assert.False(t, flow.Apply(olderResult))
	assert.Equal(t, []int{2, 1}, noteIDs(flow.View().Notes))
}

func TestListFlow_ReloadCancelsPreviousRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Note, error) {
		return nil, ctx.Err()
	})

	flow := NewListFlow(context.Background(), notesAdapter)
	older := flow.Reload()
	_ = flow.Reload()

	result := older()

	assert.ErrorIs(t, result.Err, context.Canceled)
	assert.False(t, flow.Apply(result))
	assert.Equal(t, ListLoading, flow.View().State)
}

func TestListFlow_CloseDropsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1), nil)

	flow := NewListFlow(context.Background(), notesAdapter)
	fetch := flow.Reload()
	flow.Close()

	assert.False(t, flow.Apply(fetch()))
	assert.Equal(t, ListLoading, flow.View().State)
}

func TestListFlow_ViewIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	notesAdapter := mock.NewMockNotesAdapter(ctrl)
	notesAdapter.EXPECT().ListNotes(gomock.Any()).Return(testNotes(1, 2), nil)

	flow := NewListFlow(context.Background(), notesAdapter)
	view := flow.Load()
	view.Notes[0].Title = "changed"

	assert.Equal(t, "t", flow.View().Notes[0].Title)
}
