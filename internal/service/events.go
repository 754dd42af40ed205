// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// TopicNoteCreated is published after a note was stored. The single
// argument is the created models.Note.
const TopicNoteCreated = "notes:created"
