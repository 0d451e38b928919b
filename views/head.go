package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/sitegen"
)

// Head renders the document head: title, SEO and social tags, and the page's
// JSON-LD blocks.
func Head(p sitegen.Page) templ.Component {
	return component(func(h *htmlWriter) {
		m := p.Meta
		cfg := p.Config

		h.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", pageTitle(m.Title, cfg.Name))
		meta(h, "name", "description", m.Description)
		if len(m.Keywords) > 0 {
			meta(h, "name", "keywords", strings.Join(m.Keywords, ","))
		}
		for _, a := range m.Authors {
			meta(h, "name", "author", a.Name)
			if a.URL != "" {
				linkTag(h, "author", a.URL, "")
			}
		}
		meta(h, "name", "robots", robots(m.Robots))
		linkTag(h, "canonical", m.Canonical, "")
		linkTag(h, "alternate", sitegen.AssetURL(cfg.URL, "feed.xml"), "application/rss+xml")
		linkTag(h, "stylesheet", link(cfg, "/style.css"), "")
		linkTag(h, "icon", link(cfg, cfg.LogoPath), "")

		og := m.OpenGraph
		meta(h, "property", "og:type", og.Type)
		meta(h, "property", "og:locale", og.Locale)
		meta(h, "property", "og:url", og.URL)
		meta(h, "property", "og:site_name", og.SiteName)
		meta(h, "property", "og:title", og.Title)
		meta(h, "property", "og:description", og.Description)
		for _, img := range og.Images {
			meta(h, "property", "og:image", img.URL)
			meta(h, "property", "og:image:width", strconv.Itoa(img.Width))
			meta(h, "property", "og:image:height", strconv.Itoa(img.Height))
			meta(h, "property", "og:image:alt", img.Alt)
			meta(h, "property", "og:image:type", img.Type)
		}
		if og.PublishedTime != "" {
			meta(h, "property", "article:published_time", og.PublishedTime)
		}
		if og.ModifiedTime != "" {
			meta(h, "property", "article:modified_time", og.ModifiedTime)
		}
		for _, a := range og.Authors {
			meta(h, "property", "article:author", a)
		}
		for _, t := range og.Tags {
			meta(h, "property", "article:tag", t)
		}
		if og.Section != "" {
			meta(h, "property", "article:section", og.Section)
		}

		tw := m.Twitter
		meta(h, "name", "twitter:card", tw.Card)
		meta(h, "name", "twitter:title", tw.Title)
		meta(h, "name", "twitter:description", tw.Description)
		for _, img := range tw.Images {
			meta(h, "name", "twitter:image", img)
		}
		if tw.Creator != "" {
			meta(h, "name", "twitter:creator", tw.Creator)
		}
		if tw.Site != "" {
			meta(h, "name", "twitter:site", tw.Site)
		}

		if m.WebsiteLD != nil {
			jsonLD(h, m.WebsiteLD)
		}
		if m.ArticleLD != nil {
			jsonLD(h, m.ArticleLD)
		}
		if m.Breadcrumb != nil {
			jsonLD(h, m.Breadcrumb)
		}
	})
}

// pageTitle applies the "%s | Site" template to every page but the home page.
func pageTitle(title, site string) string {
	if title == "" || title == site {
		return site
	}
	return title + " | " + site
}

func robots(r sitegen.Robots) string {
	index, follow := "noindex", "nofollow"
	if r.Index {
		index = "index"
	}
	if r.Follow {
		follow = "follow"
	}
	return index + ", " + follow
}

func meta(h *htmlWriter, key, name, content string) {
	h.raw(`<meta`)
	h.attr(key, name)
	h.attr("content", content)
	h.raw(`>`)
}

func linkTag(h *htmlWriter, rel, href, typ string) {
	h.raw(`<link`)
	h.attr("rel", rel)
	if typ != "" {
		h.attr("type", typ)
	}
	h.attr("href", href)
	h.raw(`>`)
}

func jsonLD(h *htmlWriter, v any) {
	h.raw(`<script type="application/ld+json">`)
	h.raw(sitegen.MarshalJSONLD(v))
	h.raw(`</script>`)
}
