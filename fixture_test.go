package sitegen

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

const (
	siteJSON       = `{"title": "Eng Blog", "bio": "Notes from the platform team."}`
	categoriesJSON = `[{"category_id": 1, "category_name": "Engineering"}, {"category_id": 2, "category_name": "Product"}]`
	teamJSON       = `[{
		"team_id": 1,
		"team_member_name": "Ada Lovelace",
		"team_member_position": "Staff Engineer",
		"team_member_linkedin": "https://www.linkedin.com/in/ada",
		"team_member_avatar": "ada.webp"
	}]`
	articlesJSON = `[
		{
			"article_id": "first-post",
			"article_title": "First Post",
			"author_team_id": 1,
			"category_id": 1,
			"article_created_at": "2024-03-01T10:00:00Z",
			"article_keywords": ["go", "static sites"],
			"article_description": "Why we moved the blog to flat files.",
			"article_directory": "first-post",
			"featured_image": "cover.png"
		},
		{
			"article_id": "orphan",
			"article_title": "Orphan",
			"author_team_id": 99,
			"category_id": 42,
			"article_created_at": "2024-05-01",
			"article_keywords": [],
			"article_description": "An article whose author left.",
			"article_directory": "orphan"
		}
	]`
	aboutJSON = `{
		"title": "About Us",
		"subtitle": "Who writes here",
		"mission": {"heading": "Mission", "description": "Share what we learn."},
		"values": [{"icon": "Users", "title": "People", "description": "Teams first."}],
		"contact": {"heading": "Contact", "description": "Write to us."}
	}`
	footerJSON = `{"copyright": "2024 Eng Blog", "socialLinks": [{"name": "GitHub", "url": "https://github.com/example"}]}`
)

// fixtureFS is a complete content root with one fully resolved article and
// one whose author and category dangle.
func fixtureFS(t testing.TB) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"content/site.json":         {Data: []byte(siteJSON)},
		"content/categories.json":   {Data: []byte(categoriesJSON)},
		"content/team.json":         {Data: []byte(teamJSON)},
		"content/articles.json":     {Data: []byte(articlesJSON)},
		"content/about.json":        {Data: []byte(aboutJSON)},
		"content/footer.json":       {Data: []byte(footerJSON)},
		"data/first-post/index.md":  {Data: []byte("# First Post\n\n![Cover](cover.png)\n")},
		"data/first-post/cover.png": {Data: pngBytes(t, previewImageWidth, previewImageHeight)},
		"data/orphan/index.md":      {Data: []byte("Nobody claims this one.\n")},
		"avatars/ada.webp":          {Data: []byte("RIFF")},
		"logo.png":                  {Data: pngBytes(t, 10, 10)},
	}
}

func pngBytes(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func testConfig() Config {
	cfg := Config{
		Name:          "Eng Blog",
		URL:           "https://blog.example.com/",
		Description:   "Engineering notes.",
		TwitterHandle: "@engblog",
	}
	cfg.setDefaults()
	return cfg
}

// stubViews renders each page as a single line naming the page, which is
// enough to assert routing and status codes without the views package.
func stubViews() ViewFuncs {
	text := func(s string) templ.Component {
		return templ.Raw(s)
	}
	return ViewFuncs{
		Home:         func(p HomePage) templ.Component { return text("home:" + p.Meta.Title) },
		ArticleIndex: func(p IndexPage) templ.Component { return text("index:" + p.Meta.Title) },
		Article:      func(p ArticlePage) templ.Component { return text("article:" + p.Article.ID + ":" + p.Meta.Canonical) },
		About:        func(p AboutPage) templ.Component { return text("about:" + p.About.Title) },
		NotFound:     func(p Page) templ.Component { return text("notfound:" + p.Meta.Title) },
		ServerError:  func(p Page) templ.Component { return text("error:" + p.Meta.Title) },
	}
}

func loadFixture(t *testing.T) (*Store, *Snapshot) {
	t.Helper()
	store := NewStoreFS(fixtureFS(t))
	snap, err := LoadSnapshot(t.Context(), store)
	require.NoError(t, err)
	return store, snap
}
