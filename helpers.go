package sitegen

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
// With no segments the base is returned unchanged.
func BuildURL(base string, pathSegments ...string) string {
	if len(pathSegments) == 0 {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// AssetURL joins a base URL with path segments for a file; no trailing slash.
func AssetURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// ArticleURL is the canonical URL of an article: base + "/articles/" + id + "/".
// The sitemap, the feed and page metadata all use it.
func ArticleURL(base, id string) string {
	return BuildURL(strings.TrimRight(base, "/"), "articles", id)
}

// ArticlesIndexURL is the canonical URL of the article index.
func ArticlesIndexURL(base string) string {
	return BuildURL(strings.TrimRight(base, "/"), "articles")
}

// FeaturedImageURL is the absolute URL of a file stored next to an article body.
func FeaturedImageURL(base, dir, file string) string {
	return AssetURL(strings.TrimRight(base, "/"), dataSubdir, dir, file)
}

// ImageMIMEType is the type declared for a preview image. Only .png is
// distinguished; everything else, including no file, is declared webp.
func ImageMIMEType(file string) string {
	if strings.HasSuffix(file, ".png") {
		return "image/png"
	}
	return "image/webp"
}

// JoinKeywords joins keywords with ", " in authored order.
func JoinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// WithBasePath prefixes a root-relative link with the configured base path.
func WithBasePath(basePath, p string) string {
	if basePath == "" {
		return p
	}
	return strings.TrimRight(basePath, "/") + "/" + strings.TrimLeft(p, "/")
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}
