package sitegen

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig is the authored site profile (content/site.json).
type SiteConfig struct {
	Title string `json:"title" yaml:"title"`
	Bio   string `json:"bio" yaml:"bio"`
}

// Category groups articles. Articles reference it by ID.
type Category struct {
	ID   int    `json:"category_id" yaml:"category_id"`
	Name string `json:"category_name" yaml:"category_name"`
}

// TeamMember is an article author.
type TeamMember struct {
	ID          int    `json:"team_id" yaml:"team_id"`
	Name        string `json:"team_member_name" yaml:"team_member_name"`
	Position    string `json:"team_member_position" yaml:"team_member_position"`
	LinkedinURL string `json:"team_member_linkedin" yaml:"team_member_linkedin"`
	AvatarFile  string `json:"team_member_avatar" yaml:"team_member_avatar"`
	Bio         string `json:"team_member_bio,omitempty" yaml:"team_member_bio,omitempty"`
}

// Article is a published post. ID doubles as the URL slug. AuthorID and
// CategoryID are weak references that may match nothing.
type Article struct {
	ID                string    `json:"article_id" yaml:"article_id" validate:"required,urlsegment"`
	Title             string    `json:"article_title" yaml:"article_title"`
	AuthorID          int       `json:"author_team_id" yaml:"author_team_id"`
	CategoryID        int       `json:"category_id" yaml:"category_id"`
	CreatedAt         Timestamp `json:"article_created_at" yaml:"article_created_at"`
	Keywords          []string  `json:"article_keywords" yaml:"article_keywords"`
	Description       string    `json:"article_description" yaml:"article_description"`
	ContentDirectory  string    `json:"article_directory" yaml:"article_directory" validate:"required"`
	FeaturedImageFile string    `json:"featured_image,omitempty" yaml:"featured_image,omitempty"`
}

// AboutValue is one card on the about page.
type AboutValue struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Section is a heading with a paragraph.
type Section struct {
	Heading     string `json:"heading" yaml:"heading"`
	Description string `json:"description" yaml:"description"`
}

// AboutContent is the authored about page (content/about.json).
type AboutContent struct {
	Title    string       `json:"title" yaml:"title"`
	Subtitle string       `json:"subtitle" yaml:"subtitle"`
	Mission  Section      `json:"mission" yaml:"mission"`
	Values   []AboutValue `json:"values" yaml:"values"`
	Contact  Section      `json:"contact" yaml:"contact"`
}

// SocialLink is a footer link.
type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// FooterContent is the authored footer (content/footer.json).
type FooterContent struct {
	Copyright   string       `json:"copyright" yaml:"copyright"`
	SocialLinks []SocialLink `json:"socialLinks" yaml:"socialLinks"`
}

// Timestamp keeps an authored date as written, alongside its parsed value.
// The raw text is what metadata passes through; the parsed time feeds the
// sitemap and feed.
type Timestamp struct {
	Raw  string
	Time time.Time
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseTimestamp parses an RFC 3339 timestamp or a bare YYYY-MM-DD date.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Raw: s, Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

// MustTimestamp is ParseTimestamp for literals; it panics on bad input.
func MustTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String returns the authored text.
func (t Timestamp) String() string {
	return t.Raw
}

// IsZero reports whether no timestamp was authored.
func (t Timestamp) IsZero() bool {
	return t.Raw == ""
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Raw)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ts, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

func (t *Timestamp) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timestamp must be a scalar", n.Line)
	}
	ts, err := ParseTimestamp(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*t = ts
	return nil
}
