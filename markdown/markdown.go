// Package markdown renders article bodies to HTML as templ components.
//
// Bodies are CommonMark with GitHub extensions. Relative image and link
// destinations are resolved against the article's data directory, so a body
// can refer to files stored next to it ("cover.png", "./diagrams/a.svg").
package markdown

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var assetBaseKey = parser.NewContextKey()

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithASTTransformers(util.Prioritized(assetTransformer{}, 100)),
	),
)

// Markdown returns a templ.Component that renders body as HTML. dir is the
// article's content directory; basePath prefixes the resolved asset links.
func Markdown(body, dir, basePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := RenderMarkdown(&buf, body, dir, basePath); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderMarkdown writes the HTML representation of body to buf.
func RenderMarkdown(buf *bytes.Buffer, body, dir, basePath string) error {
	pc := parser.NewContext()
	pc.Set(assetBaseKey, AssetBase(dir, basePath))
	return md.Convert([]byte(body), buf, parser.WithContext(pc))
}

// AssetBase is the root-relative URL of an article's data directory.
func AssetBase(dir, basePath string) string {
	return strings.TrimRight(basePath, "/") + path.Join("/data", dir)
}

// assetTransformer rewrites relative destinations and marks up images and
// external links.
type assetTransformer struct{}

func (assetTransformer) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	base, _ := pc.Get(assetBaseKey).(string)
	imageCount := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Image:
			node.Destination = []byte(resolve(base, string(node.Destination)))
			imageCount++
			// The first image is usually above the fold.
			if imageCount > 1 {
				node.SetAttributeString("loading", []byte("lazy"))
			}
			node.SetAttributeString("decoding", []byte("async"))
		case *ast.Link:
			dest := string(node.Destination)
			if isExternal(dest) {
				node.SetAttributeString("target", []byte("_blank"))
				node.SetAttributeString("rel", []byte("noopener noreferrer"))
			} else {
				node.Destination = []byte(resolve(base, dest))
			}
		}
		return ast.WalkContinue, nil
	})
}

// resolve joins a relative destination onto base. Absolute URLs,
// root-relative paths, fragments and queries are returned unchanged.
func resolve(base, dest string) string {
	if base == "" || !isRelative(dest) {
		return dest
	}
	suffix := ""
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest, suffix = dest[:i], dest[i:]
	}
	return path.Join(base, dest) + suffix
}

func isRelative(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "?") {
		return false
	}
	u, err := url.Parse(dest)
	return err == nil && u.Scheme == "" && u.Host == ""
}

func isExternal(dest string) bool {
	u, err := url.Parse(dest)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
