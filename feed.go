package sitegen

import (
	"encoding/xml"
	"io"
	"sort"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Author      string `xml:"author,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

// WriteFeedXML renders an RSS 2.0 feed of all articles, newest first.
// Author and category are included only when their references resolve.
func WriteFeedXML(w io.Writer, snap *Snapshot, cfg Config) error {
	articles := make([]Article, len(snap.Articles))
	copy(articles, snap.Articles)
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].CreatedAt.Time.After(articles[j].CreatedAt.Time)
	})

	items := make([]rssItem, 0, len(articles))
	for _, a := range articles {
		r := snap.Resolve(a)
		link := ArticleURL(cfg.URL, a.ID)
		item := rssItem{
			Title:       a.Title,
			Link:        link,
			Description: a.Description,
			GUID:        link,
		}
		if !a.CreatedAt.Time.IsZero() {
			item.PubDate = a.CreatedAt.Time.Format(time.RFC1123Z)
		}
		if r.Author != nil {
			item.Author = r.Author.Name
		}
		if r.Category != nil {
			item.Category = r.Category.Name
		}
		items = append(items, item)
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        BuildURL(cfg.URL),
			Description: cfg.Description,
			Items:       items,
		},
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(feed)
}

// RobotsTxt allows all crawlers and points them at the sitemap.
func RobotsTxt(cfg Config) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + AssetURL(cfg.URL, "sitemap.xml") + "\n"
}
