package views

import (
	"github.com/eringen/sitegen"
)

// link prefixes a root-relative path with the site's base path.
func link(cfg sitegen.Config, p string) string {
	return sitegen.WithBasePath(cfg.BasePath, p)
}

func articleLink(cfg sitegen.Config, id string) string {
	return link(cfg, "/articles/"+sitegen.PathEscape(id)+"/")
}

// formatDate renders an authored date as "January 2, 2006".
func formatDate(ts sitegen.Timestamp) string {
	if ts.Time.IsZero() {
		return ts.String()
	}
	return ts.Time.Format("January 2, 2006")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
