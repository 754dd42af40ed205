// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store keeps the notes of the development API server.
//
// Notes live in process memory only; a restart forgets them. A seed file
// (YAML or JSON) may pre-populate the store on start.
package store
