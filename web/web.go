// Package web carries the default page template.
package web

import _ "embed"

// Template is the page scaffolding the renderer binds to.
//
//go:embed template.html
var Template []byte
