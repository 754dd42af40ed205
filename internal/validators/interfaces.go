// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note payloads: the API checks them before they
// reach the store, and the create flow checks form input before it is sent.
//
// The only rule is presence: a note needs a non-empty title and a non-empty
// content. Errors name the first failing field so the API can map them to
// note_title_invalid or note_content_invalid.
package validators

import "context"

// Validator validates obj. When fields are given, only those fields are
// checked, in the given order.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
