package web

import "errors"

var (
	ErrNoAdapter            = errors.New("notes adapter is required")
	ErrInvalidProxyUpstream = errors.New("invalid proxy upstream")
)
