package sitegen

const (
	previewImageWidth  = 1200
	previewImageHeight = 630
	logoImageWidth     = 1000
	logoImageHeight    = 291

	articlesIndexTitle       = "All Articles"
	articlesIndexDescription = "Explore our collection of technical articles covering data engineering, software development, cloud architecture, machine learning, and product design."
)

// PageMetadata is everything a page's <head> needs. Optional parts are nil
// or empty and are omitted when serialized.
type PageMetadata struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords,omitempty"`
	Authors     []AuthorRef `json:"authors,omitempty"`
	Canonical   string      `json:"canonical"`
	Robots      Robots      `json:"robots"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     Twitter     `json:"twitter"`

	// ArticleLD and Breadcrumb are set for article pages only.
	ArticleLD  *ArticleJSONLD    `json:"articleJsonLd,omitempty"`
	Breadcrumb *BreadcrumbJSONLD `json:"breadcrumbJsonLd,omitempty"`
	WebsiteLD  *WebsiteJSONLD    `json:"websiteJsonLd,omitempty"`
}

// AuthorRef names a page author and their profile.
type AuthorRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Robots holds crawler directives.
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// OpenGraph is the og:* social preview block.
type OpenGraph struct {
	Type          string    `json:"type"`
	Locale        string    `json:"locale"`
	URL           string    `json:"url"`
	SiteName      string    `json:"siteName"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Images        []OGImage `json:"images"`
	PublishedTime string    `json:"publishedTime,omitempty"`
	ModifiedTime  string    `json:"modifiedTime,omitempty"`
	Authors       []string  `json:"authors,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Section       string    `json:"section,omitempty"`
}

// OGImage is one og:image with its declared properties.
type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
	Type   string `json:"type"`
}

// Twitter is the twitter:* card block.
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Creator     string   `json:"creator,omitempty"`
	Site        string   `json:"site,omitempty"`
}

// BuildMetadata derives the metadata and structured data of an article page.
// A nil author or category means the reference dangles; the corresponding
// fields are left out. The result depends only on the arguments.
func BuildMetadata(a Article, author *TeamMember, category *Category, cfg Config) PageMetadata {
	canonical := ArticleURL(cfg.URL, a.ID)
	imageURL := cfg.LogoURL()
	if a.FeaturedImageFile != "" {
		imageURL = FeaturedImageURL(cfg.URL, a.ContentDirectory, a.FeaturedImageFile)
	}
	created := a.CreatedAt.String()

	meta := PageMetadata{
		Title:       a.Title,
		Description: a.Description,
		Keywords:    a.Keywords,
		Canonical:   canonical,
		Robots:      Robots{Index: true, Follow: true},
		OpenGraph: OpenGraph{
			Type:        "article",
			Locale:      locale(cfg),
			URL:         canonical,
			SiteName:    cfg.Name,
			Title:       a.Title,
			Description: a.Description,
			Images: []OGImage{{
				URL:    imageURL,
				Width:  previewImageWidth,
				Height: previewImageHeight,
				Alt:    a.Title,
				Type:   ImageMIMEType(a.FeaturedImageFile),
			}},
			PublishedTime: created,
			ModifiedTime:  created,
			Tags:          a.Keywords,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       a.Title,
			Description: a.Description,
			Images:      []string{imageURL},
			Site:        cfg.TwitterHandle,
		},
	}

	ld := ArticleJSONLD{
		Context:          schemaContext,
		Type:             "Article",
		Headline:         a.Title,
		Description:      a.Description,
		Image:            imageURL,
		DatePublished:    created,
		DateModified:     created,
		Publisher:        publisher(cfg),
		MainEntityOfPage: WebPageRef{Type: "WebPage", ID: canonical},
		Keywords:         JoinKeywords(a.Keywords),
	}

	if author != nil {
		meta.Authors = []AuthorRef{{Name: author.Name, URL: author.LinkedinURL}}
		meta.OpenGraph.Authors = []string{author.Name}
		meta.Twitter.Creator = author.LinkedinURL
		ld.Author = &PersonLD{Type: "Person", Name: author.Name, URL: author.LinkedinURL}
	}
	if category != nil {
		section := category.Name
		meta.OpenGraph.Section = section
		ld.ArticleSection = &section
	}

	meta.ArticleLD = &ld
	meta.Breadcrumb = breadcrumb(cfg, a.Title, canonical)
	return meta
}

// BuildResolvedMetadata is BuildMetadata for an already joined article.
func BuildResolvedMetadata(r ResolvedArticle, cfg Config) PageMetadata {
	return BuildMetadata(r.Article, r.Author, r.Category, cfg)
}

func breadcrumb(cfg Config, title, canonical string) *BreadcrumbJSONLD {
	return &BreadcrumbJSONLD{
		Context: schemaContext,
		Type:    "BreadcrumbList",
		ItemListElement: []BreadcrumbLD{
			{Type: "ListItem", Position: 1, Name: "Home", Item: BuildURL(cfg.URL)},
			{Type: "ListItem", Position: 2, Name: "Articles", Item: ArticlesIndexURL(cfg.URL)},
			{Type: "ListItem", Position: 3, Name: title, Item: canonical},
		},
	}
}

// SiteMetadata is the default metadata of site-level pages (home, about).
func SiteMetadata(cfg Config) PageMetadata {
	website := NewWebsiteJSONLD(cfg)
	return websiteMetadata(cfg, cfg.Name, cfg.Description, BuildURL(cfg.URL), &website)
}

// ArticlesIndexMetadata is the metadata of the article index page.
func ArticlesIndexMetadata(cfg Config) PageMetadata {
	return websiteMetadata(cfg, articlesIndexTitle, articlesIndexDescription, ArticlesIndexURL(cfg.URL), nil)
}

func websiteMetadata(cfg Config, title, description, canonical string, website *WebsiteJSONLD) PageMetadata {
	logo := cfg.LogoURL()
	return PageMetadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      Robots{Index: true, Follow: true},
		OpenGraph: OpenGraph{
			Type:        "website",
			Locale:      locale(cfg),
			URL:         canonical,
			SiteName:    cfg.Name,
			Title:       title,
			Description: description,
			Images: []OGImage{{
				URL:    logo,
				Width:  logoImageWidth,
				Height: logoImageHeight,
				Alt:    cfg.Name,
				Type:   ImageMIMEType(logo),
			}},
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Images:      []string{logo},
			Site:        cfg.TwitterHandle,
		},
		WebsiteLD: website,
	}
}

func locale(cfg Config) string {
	if cfg.Locale == "" {
		return "en_US"
	}
	return cfg.Locale
}
