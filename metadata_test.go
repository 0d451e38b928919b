package sitegen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func introArticle() Article {
	return Article{
		ID:               "a1",
		Title:            "Intro",
		AuthorID:         7,
		CategoryID:       3,
		Keywords:         []string{"x", "y"},
		Description:      "Getting started.",
		CreatedAt:        MustTimestamp("2024-01-01T00:00:00Z"),
		ContentDirectory: "intro",
	}
}

func TestBuildMetadataDanglingAuthor(t *testing.T) {
	cfg := testConfig()
	a := introArticle()
	r := Resolve(a, []TeamMember{{ID: 1, Name: "Ada"}}, []Category{{ID: 3, Name: "Eng"}})

	meta := BuildResolvedMetadata(r, cfg)
	ld := meta.ArticleLD
	require.NotNil(t, ld)

	require.NotNil(t, ld.ArticleSection)
	assert.Equal(t, "Eng", *ld.ArticleSection)
	assert.Nil(t, ld.Author)
	assert.Equal(t, "x, y", ld.Keywords)
	assert.Equal(t, "2024-01-01T00:00:00Z", ld.DatePublished)
	assert.Equal(t, ld.DatePublished, ld.DateModified)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(MarshalJSONLD(ld)), &raw))
	assert.NotContains(t, raw, "author")
	assert.Equal(t, "Eng", raw["articleSection"])
	assert.Equal(t, "Article", raw["@type"])

	assert.Empty(t, meta.Authors)
	assert.Empty(t, meta.OpenGraph.Authors)
	assert.Empty(t, meta.Twitter.Creator)
	assert.Equal(t, "Eng", meta.OpenGraph.Section)
	assert.Equal(t, []string{"x", "y"}, meta.OpenGraph.Tags)
}

func TestBuildMetadataResolvedAuthor(t *testing.T) {
	cfg := testConfig()
	author := &TeamMember{ID: 7, Name: "Ada", LinkedinURL: "https://www.linkedin.com/in/ada"}

	meta := BuildMetadata(introArticle(), author, nil, cfg)

	require.NotNil(t, meta.ArticleLD.Author)
	assert.Equal(t, PersonLD{Type: "Person", Name: "Ada", URL: author.LinkedinURL}, *meta.ArticleLD.Author)
	assert.Nil(t, meta.ArticleLD.ArticleSection)
	assert.Equal(t, []AuthorRef{{Name: "Ada", URL: author.LinkedinURL}}, meta.Authors)
	assert.Equal(t, []string{"Ada"}, meta.OpenGraph.Authors)
	assert.Equal(t, author.LinkedinURL, meta.Twitter.Creator)
	assert.Empty(t, meta.OpenGraph.Section)

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(MarshalJSONLD(meta.ArticleLD)), &raw))
	assert.NotContains(t, raw, "articleSection")
}

func TestBuildMetadataURLs(t *testing.T) {
	cfg := testConfig()
	meta := BuildMetadata(introArticle(), nil, nil, cfg)

	canonical := "https://blog.example.com/articles/a1/"
	assert.Equal(t, canonical, meta.Canonical)
	assert.Equal(t, canonical, meta.OpenGraph.URL)
	assert.Equal(t, canonical, meta.ArticleLD.MainEntityOfPage.ID)
	assert.Equal(t, "WebPage", meta.ArticleLD.MainEntityOfPage.Type)
	assert.Equal(t, "article", meta.OpenGraph.Type)
	assert.Equal(t, Robots{Index: true, Follow: true}, meta.Robots)
	assert.Equal(t, "@engblog", meta.Twitter.Site)
	assert.Equal(t, "summary_large_image", meta.Twitter.Card)

	pub := meta.ArticleLD.Publisher
	assert.Equal(t, "Organization", pub.Type)
	assert.Equal(t, "Eng Blog", pub.Name)
	assert.Equal(t, "https://blog.example.com/logo.png", pub.Logo.URL)

	crumbs := meta.Breadcrumb.ItemListElement
	require.Len(t, crumbs, 3)
	assert.Equal(t, "https://blog.example.com", crumbs[0].Item)
	assert.Equal(t, "https://blog.example.com/articles/", crumbs[1].Item)
	assert.Equal(t, BreadcrumbLD{Type: "ListItem", Position: 3, Name: "Intro", Item: canonical}, crumbs[2])
}

func TestBuildMetadataImages(t *testing.T) {
	cfg := testConfig()
	tests := []struct {
		name     string
		file     string
		wantURL  string
		wantType string
	}{
		{"png", "cover.png", "https://blog.example.com/data/intro/cover.png", "image/png"},
		{"webp", "cover.webp", "https://blog.example.com/data/intro/cover.webp", "image/webp"},
		{"jpeg declared webp", "cover.jpg", "https://blog.example.com/data/intro/cover.jpg", "image/webp"},
		{"logo fallback", "", "https://blog.example.com/logo.png", "image/webp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := introArticle()
			a.FeaturedImageFile = tt.file
			meta := BuildMetadata(a, nil, nil, cfg)

			require.Len(t, meta.OpenGraph.Images, 1)
			img := meta.OpenGraph.Images[0]
			assert.Equal(t, tt.wantURL, img.URL)
			assert.Equal(t, tt.wantType, img.Type)
			assert.Equal(t, 1200, img.Width)
			assert.Equal(t, 630, img.Height)
			assert.Equal(t, "Intro", img.Alt)
			assert.Equal(t, []string{tt.wantURL}, meta.Twitter.Images)
			assert.Equal(t, tt.wantURL, meta.ArticleLD.Image)
		})
	}
}

func TestBuildMetadataIdempotent(t *testing.T) {
	cfg := testConfig()
	cat := &Category{ID: 3, Name: "Eng"}

	first, err := json.Marshal(BuildMetadata(introArticle(), nil, cat, cfg))
	require.NoError(t, err)
	second, err := json.Marshal(BuildMetadata(introArticle(), nil, cat, cfg))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestCanonicalURLMatchesSitemap(t *testing.T) {
	cfg := testConfig()
	articles := []Article{introArticle(), {ID: "second", ContentDirectory: "second"}}
	entries := BuildSitemap(articles, cfg.URL)

	for i, a := range articles {
		meta := BuildMetadata(a, nil, nil, cfg)
		assert.Equal(t, entries[i+2].URL, meta.ArticleLD.MainEntityOfPage.ID)
	}
}

func TestSiteMetadata(t *testing.T) {
	cfg := testConfig()

	meta := SiteMetadata(cfg)
	assert.Equal(t, "Eng Blog", meta.Title)
	assert.Equal(t, "https://blog.example.com", meta.Canonical)
	assert.Equal(t, "website", meta.OpenGraph.Type)
	require.NotNil(t, meta.WebsiteLD)
	assert.Equal(t, "WebSite", meta.WebsiteLD.Type)
	assert.Nil(t, meta.ArticleLD)
	require.Len(t, meta.OpenGraph.Images, 1)
	assert.Equal(t, 1000, meta.OpenGraph.Images[0].Width)
	assert.Equal(t, "image/png", meta.OpenGraph.Images[0].Type)

	index := ArticlesIndexMetadata(cfg)
	assert.Equal(t, "All Articles", index.Title)
	assert.Equal(t, "https://blog.example.com/articles/", index.Canonical)
	assert.Nil(t, index.WebsiteLD)
}

func TestMarshalJSONLDEscapesScriptClose(t *testing.T) {
	a := introArticle()
	a.Title = "</script><b>"
	out := MarshalJSONLD(BuildMetadata(a, nil, nil, testConfig()).ArticleLD)
	assert.NotContains(t, out, "</script>")
	assert.Contains(t, out, `\u003c/script\u003e`)
}
