package web

import "embed"

//go:embed templates/*.gohtml
var templateFiles embed.FS
