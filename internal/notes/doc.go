// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notes holds the view state shared by the terminal and web clients:
// the note listing flow ([ListFlow]) and the note creation flow
// ([CreateFlow]). Neither flow renders anything; front-ends read a snapshot
// and draw it their own way.
//
// Requests are split into a start step, which records the request and
// returns a function performing the network call, and an apply step, which
// folds the result back into the state. The terminal client runs the
// returned function as a bubbletea command; the web client runs it inline.
// Results of requests that were superseded or cancelled are dropped at the
// apply step.
package notes
