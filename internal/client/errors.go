package client

import "errors"

var ErrNoFrontend = errors.New("no frontend to run")
