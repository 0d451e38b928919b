package sitegen

import "embed"

// EmbeddedAssets contains files shipped with every site: style.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

const stylesheetPath = "embedded/style.css"
