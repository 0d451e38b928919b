package sitegen

import "encoding/json"

const schemaContext = "https://schema.org"

// ArticleJSONLD is a schema.org Article. Author and ArticleSection are
// omitted from the JSON when the article's references dangle.
type ArticleJSONLD struct {
	Context          string       `json:"@context"`
	Type             string       `json:"@type"`
	Headline         string       `json:"headline"`
	Description      string       `json:"description"`
	Image            string       `json:"image"`
	DatePublished    string       `json:"datePublished"`
	DateModified     string       `json:"dateModified"`
	Author           *PersonLD    `json:"author,omitempty"`
	Publisher        Organization `json:"publisher"`
	MainEntityOfPage WebPageRef   `json:"mainEntityOfPage"`
	Keywords         string       `json:"keywords"`
	ArticleSection   *string      `json:"articleSection,omitempty"`
}

// PersonLD is a schema.org Person.
type PersonLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Organization is the schema.org publisher block.
type Organization struct {
	Type string      `json:"@type"`
	Name string      `json:"name"`
	Logo ImageObject `json:"logo"`
}

// ImageObject is a schema.org ImageObject.
type ImageObject struct {
	Type string `json:"@type"`
	URL  string `json:"url"`
}

// WebPageRef points at the page an entity is the main subject of.
type WebPageRef struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// BreadcrumbJSONLD is a schema.org BreadcrumbList.
type BreadcrumbJSONLD struct {
	Context         string         `json:"@context"`
	Type            string         `json:"@type"`
	ItemListElement []BreadcrumbLD `json:"itemListElement"`
}

// BreadcrumbLD is one ListItem of a breadcrumb trail.
type BreadcrumbLD struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// WebsiteJSONLD is a schema.org WebSite, emitted on site-level pages.
type WebsiteJSONLD struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// NewWebsiteJSONLD describes the site itself.
func NewWebsiteJSONLD(cfg Config) WebsiteJSONLD {
	return WebsiteJSONLD{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        cfg.Name,
		URL:         BuildURL(cfg.URL),
		Description: cfg.Description,
	}
}

func publisher(cfg Config) Organization {
	return Organization{
		Type: "Organization",
		Name: cfg.Name,
		Logo: ImageObject{Type: "ImageObject", URL: cfg.LogoURL()},
	}
}

// MarshalJSONLD encodes v for inline embedding in a <script> element.
// encoding/json escapes <, > and &, so the output cannot close the element.
func MarshalJSONLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
