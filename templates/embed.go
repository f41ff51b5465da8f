// Package templates embeds the dashboard HTML templates.
package templates

import "embed"

//go:embed *.html partials/*.html
var FS embed.FS
