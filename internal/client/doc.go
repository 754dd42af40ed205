// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime shared by the notes front-ends.
//
// It binds a front-end (the terminal UI or the web client) to the process
// lifecycle: the front-end runs until it returns or the process receives an
// interrupt, at which point its context is cancelled so outstanding notes
// API requests are abandoned.
package client
