package sitegen

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"time"
)

// ChangeFrequency is a sitemap changefreq hint.
type ChangeFrequency string

const (
	ChangeDaily   ChangeFrequency = "daily"
	ChangeMonthly ChangeFrequency = "monthly"
)

// SitemapEntry is one page listed in the sitemap. LastModified is zero for
// pages without an authored date.
type SitemapEntry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency ChangeFrequency
	Priority        float64
}

// BuildSitemap lists the home page, the article index and then every article
// in collection order, so it always has 2+len(articles) entries.
func BuildSitemap(articles []Article, base string) []SitemapEntry {
	base = strings.TrimRight(base, "/")
	entries := make([]SitemapEntry, 0, 2+len(articles))
	entries = append(entries,
		SitemapEntry{URL: BuildURL(base), ChangeFrequency: ChangeDaily, Priority: 1.0},
		SitemapEntry{URL: ArticlesIndexURL(base), ChangeFrequency: ChangeDaily, Priority: 0.9},
	)
	for _, a := range articles {
		entries = append(entries, SitemapEntry{
			URL:             ArticleURL(base, a.ID),
			LastModified:    a.CreatedAt.Time,
			ChangeFrequency: ChangeMonthly,
			Priority:        0.8,
		})
	}
	return entries
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteSitemapXML renders entries as a sitemaps.org urlset document.
func WriteSitemapXML(w io.Writer, entries []SitemapEntry) error {
	urls := make([]sitemapURL, 0, len(entries))
	for _, e := range entries {
		u := sitemapURL{
			Loc:        e.URL,
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.RFC3339)
		}
		urls = append(urls, u)
	}
	set := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(set)
}
