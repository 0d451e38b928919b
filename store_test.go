package sitegen

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadsCollections(t *testing.T) {
	s := NewStoreFS(fixtureFS(t))

	site, err := s.SiteConfig()
	require.NoError(t, err)
	assert.Equal(t, "Eng Blog", site.Title)

	cats, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: 1, Name: "Engineering"}, {ID: 2, Name: "Product"}}, cats)

	team, err := s.TeamMembers()
	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Ada Lovelace", team[0].Name)
	assert.Equal(t, "ada.webp", team[0].AvatarFile)

	articles, err := s.Articles()
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "first-post", articles[0].ID)
	assert.Equal(t, "orphan", articles[1].ID)
	assert.Equal(t, "2024-03-01T10:00:00Z", articles[0].CreatedAt.String())
	assert.Equal(t, 2024, articles[1].CreatedAt.Time.Year())
	assert.Equal(t, []string{"go", "static sites"}, articles[0].Keywords)

	about, err := s.AboutContent()
	require.NoError(t, err)
	require.Len(t, about.Values, 1)
	assert.Equal(t, "Users", about.Values[0].Icon)

	footer, err := s.FooterContent()
	require.NoError(t, err)
	require.Len(t, footer.SocialLinks, 1)
	assert.Equal(t, "GitHub", footer.SocialLinks[0].Name)
}

func TestStoreYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"content/articles.yaml": {Data: []byte(`
- article_id: hello
  article_title: Hello
  author_team_id: 1
  category_id: 2
  article_created_at: 2024-01-01
  article_keywords: [a, b]
  article_description: First
  article_directory: hello
`)},
		"content/categories.yml": {Data: []byte("- category_id: 2\n  category_name: Eng\n")},
	}
	s := NewStoreFS(fsys)

	articles, err := s.Articles()
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "hello", articles[0].ID)
	assert.Equal(t, "2024-01-01", articles[0].CreatedAt.String())
	assert.Equal(t, []string{"a", "b"}, articles[0].Keywords)

	cats, err := s.Categories()
	require.NoError(t, err)
	assert.Equal(t, []Category{{ID: 2, Name: "Eng"}}, cats)
}

func TestStorePrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"content/site.json": {Data: []byte(`{"title": "from json"}`)},
		"content/site.yaml": {Data: []byte("title: from yaml\n")},
	}
	site, err := NewStoreFS(fsys).SiteConfig()
	require.NoError(t, err)
	assert.Equal(t, "from json", site.Title)
}

func TestStoreMissingCollection(t *testing.T) {
	_, err := NewStoreFS(fstest.MapFS{}).Articles()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContentMissing))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var ce *ContentError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, CollectionArticles, ce.Collection)
	assert.Equal(t, "content/articles.json", ce.Path)
}

func TestStoreRejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `[{"article_id": `},
		{"empty", "  \n"},
		{"trailing garbage", "[{\"article_id\": \"a\", \"article_directory\": \"a\"}]\n<<<<<<< HEAD\ngarbage"},
		{"second value", `[] []`},
		{"null", "null\n"},
		{"bad timestamp", `[{"article_id": "a", "article_directory": "a", "article_created_at": "yesterday"}]`},
		{"missing id", `[{"article_directory": "a"}]`},
		{"unsafe id", `[{"article_id": "a/b", "article_directory": "a"}]`},
		{"dot id", `[{"article_id": "..", "article_directory": "a"}]`},
		{"missing directory", `[{"article_id": "a"}]`},
		{"duplicate id", `[{"article_id": "a", "article_directory": "a"}, {"article_id": "a", "article_directory": "b"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStoreFS(fstest.MapFS{"content/articles.json": {Data: []byte(tt.data)}})
			_, err := s.Articles()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContentMissing), "got %v", err)
		})
	}
}

func TestStoreRejectsBadYAML(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"null", "null\n"},
		{"tilde", "~\n"},
		{"comments only", "# nothing yet\n"},
		{"two documents", "- article_id: a\n  article_directory: a\n---\n- article_id: b\n  article_directory: b\n"},
		{"malformed", "- article_id: [a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStoreFS(fstest.MapFS{"content/articles.yaml": {Data: []byte(tt.data)}})
			_, err := s.Articles()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContentMissing), "got %v", err)
		})
	}
}

func TestStoreRejectsNullObject(t *testing.T) {
	_, err := NewStoreFS(fstest.MapFS{"content/site.json": {Data: []byte("null")}}).SiteConfig()
	assert.True(t, errors.Is(err, ErrContentMissing), "got %v", err)
}

func TestStoreArticleBody(t *testing.T) {
	s := NewStoreFS(fixtureFS(t))

	body, err := s.ArticleBody("orphan")
	require.NoError(t, err)
	assert.Equal(t, "Nobody claims this one.\n", body)

	body, err = s.ArticleBody("/orphan/")
	require.NoError(t, err)
	assert.NotEmpty(t, body)

	_, err = s.ArticleBody("missing")
	assert.True(t, errors.Is(err, ErrContentMissing))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = s.ArticleBody("../content")
	assert.True(t, errors.Is(err, ErrContentMissing))
}

func TestArticleBodyPath(t *testing.T) {
	assert.Equal(t, "data/intro/index.md", ArticleBodyPath("intro"))
	assert.Equal(t, "data/2024/intro/index.md", ArticleBodyPath("/2024/intro/"))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		year int
	}{
		{"2024-01-01T00:00:00Z", true, 2024},
		{"2023-06-15T08:30:00.123+02:00", true, 2023},
		{"2022-02-02T10:00:00", true, 2022},
		{"2021-12-31", true, 2021},
		{"31/12/2021", false, 0},
		{"", false, 0},
	}
	for _, tt := range tests {
		ts, err := ParseTimestamp(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.in, ts.String())
		assert.Equal(t, tt.year, ts.Time.Year())
	}
}
