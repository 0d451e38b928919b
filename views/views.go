// Package views is the default page markup for sitegen sites. Components are
// plain templ.ComponentFuncs so a site can replace any of them through
// sitegen.ViewFuncs.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/sitegen"
)

// Default returns the built-in views.
func Default() sitegen.ViewFuncs {
	return sitegen.ViewFuncs{
		Home:         Home,
		ArticleIndex: ArticleIndex,
		Article:      Article,
		About:        About,
		NotFound:     NotFound,
		ServerError:  ServerError,
	}
}

// htmlWriter writes markup and remembers the first error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (h *htmlWriter) component(c templ.Component) {
	if h.err == nil {
		h.err = c.Render(h.ctx, h.w)
	}
}

// element writes <tag attrs...>text</tag>. attrs alternate name, value.
func (h *htmlWriter) element(tag, text string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
	h.text(text)
	h.raw("</" + tag + ">")
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// Layout wraps body in the document shell shared by every page.
func Layout(p sitegen.Page, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head>`)
		h.component(Head(p))
		h.raw(`</head><body>`)
		header(h, p)
		h.raw(`<main>`)
		h.component(body)
		h.raw(`</main>`)
		footer(h, p)
		h.raw(`</body></html>`)
	})
}

func header(h *htmlWriter, p sitegen.Page) {
	h.raw(`<header class="site-header"><div class="container">`)
	h.raw(`<a`)
	h.attr("href", link(p.Config, "/"))
	h.raw(`><img`)
	h.attr("src", link(p.Config, p.Config.LogoPath))
	h.attr("alt", p.Config.Name)
	h.raw(` width="150" height="40"></a>`)
	h.raw(`<nav>`)
	h.element("a", "Articles", "href", link(p.Config, "/articles/"))
	h.raw(" ")
	h.element("a", "About", "href", link(p.Config, "/about/"))
	h.raw(`</nav></div></header>`)
}

func footer(h *htmlWriter, p sitegen.Page) {
	h.raw(`<footer class="site-footer"><div class="container">`)
	if len(p.Footer.SocialLinks) > 0 {
		h.raw(`<nav>`)
		for i, l := range p.Footer.SocialLinks {
			if i > 0 {
				h.raw(" · ")
			}
			h.element("a", l.Name, "href", l.URL, "rel", "noopener noreferrer", "target", "_blank")
		}
		h.raw(`</nav>`)
	}
	copyright := p.Footer.Copyright
	if copyright == "" {
		copyright = p.Config.Name
	}
	h.element("p", copyright)
	h.raw(`</div></footer>`)
}
