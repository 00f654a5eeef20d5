// Package templates embeds the scaffold file templates.
package templates

import "embed"

//go:embed *.tmpl licenses
var FS embed.FS
