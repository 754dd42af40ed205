// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web is the server-rendered notes client.
//
// Every page request runs the notes flows against the notes API and renders
// their snapshot with html/template: GET / lists notes next to the create
// form, POST /notes submits the form and re-renders the page, GET /notes/{id}
// shows a single note. When a proxy upstream is configured, /api/* is
// forwarded to the notes API so browsers and the proxied target share the
// web client's origin.
package web
