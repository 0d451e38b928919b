package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/sitegen"
	"github.com/eringen/sitegen/markdown"
)

// Home lists the latest articles under the site profile.
func Home(p sitegen.HomePage) templ.Component {
	return Layout(p.Page, component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><div class="container">`)
		h.element("h1", firstNonEmpty(p.Site.Title, p.Config.Name))
		h.element("p", firstNonEmpty(p.Site.Bio, p.Config.Description))
		h.raw(`</div></section><section class="container">`)
		articleCards(h, p.Config, p.Articles)
		h.element("a", "View all articles", "href", link(p.Config, "/articles/"))
		h.raw(`</section>`)
	}))
}

// ArticleIndex lists every article.
func ArticleIndex(p sitegen.IndexPage) templ.Component {
	return Layout(p.Page, component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><div class="container">`)
		h.element("h1", p.Meta.Title)
		h.element("p", p.Meta.Description)
		h.raw(`</div></section><section class="container">`)
		if len(p.Articles) == 0 {
			h.element("p", "No articles yet.")
		}
		articleCards(h, p.Config, p.Articles)
		h.raw(`</section>`)
	}))
}

func articleCards(h *htmlWriter, cfg sitegen.Config, articles []sitegen.ResolvedArticle) {
	h.raw(`<div class="cards">`)
	for _, r := range articles {
		a := r.Article
		h.raw(`<article class="card">`)
		if r.Category != nil {
			h.element("span", r.Category.Name, "class", "badge")
		}
		h.raw(`<h2>`)
		h.element("a", a.Title, "href", articleLink(cfg, a.ID))
		h.raw(`</h2>`)
		h.element("p", a.Description)
		h.raw(`<p class="meta">`)
		if r.Author != nil {
			h.element("span", r.Author.Name)
		}
		h.element("time", formatDate(a.CreatedAt), "datetime", a.CreatedAt.String())
		h.raw(`</p></article>`)
	}
	h.raw(`</div>`)
}

// Article renders one article. Author and category blocks appear only when
// their references resolve.
func Article(p sitegen.ArticlePage) templ.Component {
	return Layout(p.Page, component(func(h *htmlWriter) {
		a := p.Article
		cfg := p.Config

		h.raw(`<article><section class="article-header"><div class="container">`)
		h.element("a", "← Back to Articles", "href", link(cfg, "/articles/"))
		if p.Category != nil {
			h.raw(`<div>`)
			h.element("span", p.Category.Name, "class", "badge")
			h.raw(`</div>`)
		}
		h.element("h1", a.Title)
		h.element("p", a.Description)
		h.raw(`<div class="meta">`)
		if p.Author != nil {
			h.element("span", "By "+p.Author.Name)
		}
		h.element("time", formatDate(a.CreatedAt), "datetime", a.CreatedAt.String())
		h.raw(`</div></div></section>`)

		if a.FeaturedImageFile != "" {
			h.raw(`<section class="featured"><div class="container"><img`)
			h.attr("src", link(cfg, "/data/"+a.ContentDirectory+"/"+a.FeaturedImageFile))
			h.attr("alt", a.Title)
			h.raw(`></div></section>`)
		}

		h.raw(`<section class="prose"><div class="container">`)
		h.component(markdown.Markdown(p.Body, a.ContentDirectory, cfg.BasePath))
		h.raw(`</div></section>`)

		h.raw(`<section class="container">`)
		if len(a.Keywords) > 0 {
			h.element("h2", "Keywords")
			h.raw(`<div>`)
			for _, k := range a.Keywords {
				h.element("span", k, "class", "badge")
				h.raw(" ")
			}
			h.raw(`</div>`)
		}
		if m := p.Author; m != nil {
			h.raw(`<div class="author">`)
			if m.AvatarFile != "" {
				h.raw(`<img`)
				h.attr("src", link(cfg, "/avatars/"+m.AvatarFile))
				h.attr("alt", m.Name)
				h.raw(`>`)
			}
			h.raw(`<div>`)
			h.element("p", "Written by")
			h.raw(`<p><strong>`)
			if m.LinkedinURL != "" {
				h.element("a", m.Name, "href", m.LinkedinURL, "rel", "noopener noreferrer author")
			} else {
				h.text(m.Name)
			}
			h.raw(`</strong></p>`)
			h.element("p", m.Position)
			if m.Bio != "" {
				h.element("p", m.Bio)
			}
			h.raw(`</div></div>`)
		}
		h.raw(`</section></article>`)
	}))
}

// About renders the about page with one card per value.
func About(p sitegen.AboutPage) templ.Component {
	return Layout(p.Page, component(func(h *htmlWriter) {
		ab := p.About
		h.raw(`<section class="hero"><div class="container">`)
		h.element("h1", ab.Title)
		h.element("p", ab.Subtitle)
		h.raw(`</div></section><section class="container">`)
		h.element("h2", ab.Mission.Heading)
		h.element("p", ab.Mission.Description)
		h.raw(`<div class="cards">`)
		for _, v := range ab.Values {
			h.raw(`<div class="card">`)
			h.raw(IconSVG(sitegen.ParseIcon(v.Icon)))
			h.element("h3", v.Title)
			h.element("p", v.Description)
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
		h.element("h2", ab.Contact.Heading)
		h.element("p", ab.Contact.Description)
		h.raw(`</section>`)
	}))
}

// NotFound is shown for unknown articles and paths.
func NotFound(p sitegen.Page) templ.Component {
	return Layout(p, component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><div class="container">`)
		h.element("h1", p.Meta.Title)
		h.element("p", "The page you are looking for does not exist.")
		h.element("a", "Browse all articles", "href", link(p.Config, "/articles/"))
		h.raw(`</div></section>`)
	}))
}

// ServerError is shown when content could not be loaded.
func ServerError(p sitegen.Page) templ.Component {
	return Layout(p, component(func(h *htmlWriter) {
		h.raw(`<section class="hero"><div class="container">`)
		h.element("h1", p.Meta.Title)
		h.element("p", "Something went wrong while building this page.")
		h.raw(`</div></section>`)
	}))
}
