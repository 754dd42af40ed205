// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the development notes API.
//
// NotesService lists, looks up and creates notes on top of a
// store.NotesStorage. Creation stamps the note with the current time and
// publishes a TopicNoteCreated event on the event bus. Input validation is a
// decorator applied with NotesServiceWrapper.Wrap.
package service
