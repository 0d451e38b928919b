// Package scaffold provides the embedded starter content written by
// "sitegen init".
package scaffold

import "embed"

// Templates contains the starter content tree. Files use Go text/template
// syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
