package sitegen

import (
	"sort"
)

// Page is what every view receives.
type Page struct {
	Config Config
	Site   SiteConfig
	Footer FooterContent
	Meta   PageMetadata
}

// HomePage lists the latest articles.
type HomePage struct {
	Page
	Articles []ResolvedArticle
}

// IndexPage lists every article.
type IndexPage struct {
	Page
	Articles []ResolvedArticle
}

// ArticlePage is a single article with its raw body.
type ArticlePage struct {
	Page
	ResolvedArticle
	Body string
}

// AboutPage renders the about content.
type AboutPage struct {
	Page
	About AboutContent
}

const homeArticleCount = 6

func newPage(snap *Snapshot, cfg Config, meta PageMetadata) Page {
	return Page{Config: cfg, Site: snap.Site, Footer: snap.Footer, Meta: meta}
}

// NewHomePage builds the home page model.
func NewHomePage(snap *Snapshot, cfg Config) HomePage {
	articles := latest(snap)
	if len(articles) > homeArticleCount {
		articles = articles[:homeArticleCount]
	}
	return HomePage{Page: newPage(snap, cfg, SiteMetadata(cfg)), Articles: articles}
}

// NewIndexPage builds the article index model.
func NewIndexPage(snap *Snapshot, cfg Config) IndexPage {
	return IndexPage{Page: newPage(snap, cfg, ArticlesIndexMetadata(cfg)), Articles: latest(snap)}
}

// NewArticlePage resolves the article id and loads its body. It returns
// ErrNotFound for unknown ids.
func NewArticlePage(snap *Snapshot, cfg Config, store *Store, id string) (ArticlePage, error) {
	art, err := snap.Article(id)
	if err != nil {
		return ArticlePage{}, err
	}
	body, err := store.ArticleBody(art.ContentDirectory)
	if err != nil {
		return ArticlePage{}, err
	}
	r := snap.Resolve(art)
	return ArticlePage{
		Page:            newPage(snap, cfg, BuildResolvedMetadata(r, cfg)),
		ResolvedArticle: r,
		Body:            body,
	}, nil
}

// NewAboutPage builds the about page model.
func NewAboutPage(snap *Snapshot, cfg Config) AboutPage {
	meta := SiteMetadata(cfg)
	if snap.About.Title != "" {
		meta.Title = snap.About.Title
		meta.OpenGraph.Title = snap.About.Title
		meta.Twitter.Title = snap.About.Title
	}
	meta.Canonical = BuildURL(cfg.URL, "about")
	meta.OpenGraph.URL = meta.Canonical
	meta.WebsiteLD = nil
	return AboutPage{Page: newPage(snap, cfg, meta), About: snap.About}
}

// NewNotFoundPage is the model of the page shown for an unknown article id.
func NewNotFoundPage(snap *Snapshot, cfg Config) Page {
	p := NewErrorPage(cfg, "Article Not Found")
	p.Site = snap.Site
	p.Footer = snap.Footer
	return p
}

// NewErrorPage is a bare page model for error responses. It is not indexed.
func NewErrorPage(cfg Config, title string) Page {
	meta := SiteMetadata(cfg)
	meta.Title = title
	meta.OpenGraph.Title = title
	meta.Twitter.Title = title
	meta.Robots = Robots{}
	meta.WebsiteLD = nil
	return Page{Config: cfg, Meta: meta}
}

// latest returns the articles resolved and ordered newest first.
func latest(snap *Snapshot) []ResolvedArticle {
	out := make([]ResolvedArticle, 0, len(snap.Articles))
	for _, a := range snap.Articles {
		out = append(out, snap.Resolve(a))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Article.CreatedAt.Time.After(out[j].Article.CreatedAt.Time)
	})
	return out
}
