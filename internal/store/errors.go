// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when no note has the requested id.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrUnsupportedSeedFormat is returned for seed files that are neither
	// YAML nor JSON.
	ErrUnsupportedSeedFormat = errors.New("unsupported seed file format")

	// ErrReadingSeedFile is returned when the seed file cannot be read or
	// decoded.
	ErrReadingSeedFile = errors.New("error reading seed file")
)
