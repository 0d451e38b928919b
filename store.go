package sitegen

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Collection file names below content/.
const (
	CollectionSite       = "site"
	CollectionCategories = "categories"
	CollectionTeam       = "team"
	CollectionArticles   = "articles"
	CollectionAbout      = "about"
	CollectionFooter     = "footer"
)

const (
	contentSubdir = "content"
	dataSubdir    = "data"
	bodyFile      = "index.md"
)

// ErrContentMissing is matched by every error caused by an absent or
// malformed content file.
var ErrContentMissing = errors.New("content missing")

// ContentError describes a content file that could not be loaded.
type ContentError struct {
	Collection string
	Path       string
	Err        error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content %s (%s): %v", e.Collection, e.Path, e.Err)
}

func (e *ContentError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrContentMissing) true for any ContentError.
func (e *ContentError) Is(target error) bool {
	return target == ErrContentMissing
}

// Store reads content collections from a directory tree laid out as
// content/<collection>.{json,yaml,yml} and data/<dir>/index.md. Every call
// reads and parses afresh; callers own the returned values.
type Store struct {
	fsys     fs.FS
	validate *validator.Validate
}

// NewStore returns a Store rooted at dir on the local filesystem.
func NewStore(dir string) *Store {
	return NewStoreFS(os.DirFS(dir))
}

// NewStoreFS returns a Store reading from fsys.
func NewStoreFS(fsys fs.FS) *Store {
	v := validator.New()
	if err := v.RegisterValidation("urlsegment", isURLSegment); err != nil {
		panic(err)
	}
	return &Store{fsys: fsys, validate: v}
}

// FS exposes the underlying filesystem for asset lookups.
func (s *Store) FS() fs.FS {
	return s.fsys
}

// SiteConfig loads the site profile.
func (s *Store) SiteConfig() (SiteConfig, error) {
	var v SiteConfig
	err := s.load(CollectionSite, &v)
	return v, err
}

// Categories loads all categories in authored order.
func (s *Store) Categories() ([]Category, error) {
	var v []Category
	err := s.load(CollectionCategories, &v)
	return v, err
}

// TeamMembers loads all team members in authored order.
func (s *Store) TeamMembers() ([]TeamMember, error) {
	var v []TeamMember
	err := s.load(CollectionTeam, &v)
	return v, err
}

// Articles loads all articles in authored order. Each article must carry a
// URL-safe id and a content directory, and ids must be unique.
func (s *Store) Articles() ([]Article, error) {
	var v []Article
	p, err := s.locate(CollectionArticles)
	if err != nil {
		return nil, err
	}
	if err := s.decode(CollectionArticles, p, &v); err != nil {
		return nil, err
	}
	seen := make(map[string]int, len(v))
	for i, a := range v {
		if err := s.validate.Struct(a); err != nil {
			return nil, &ContentError{Collection: CollectionArticles, Path: p, Err: fmt.Errorf("article %d: %w", i, err)}
		}
		if j, dup := seen[a.ID]; dup {
			return nil, &ContentError{Collection: CollectionArticles, Path: p, Err: fmt.Errorf("article %d: id %q already used by article %d", i, a.ID, j)}
		}
		seen[a.ID] = i
	}
	return v, nil
}

// AboutContent loads the about page.
func (s *Store) AboutContent() (AboutContent, error) {
	var v AboutContent
	err := s.load(CollectionAbout, &v)
	return v, err
}

// FooterContent loads the footer.
func (s *Store) FooterContent() (FooterContent, error) {
	var v FooterContent
	err := s.load(CollectionFooter, &v)
	return v, err
}

// ArticleBody returns the raw markup of the article stored in dir.
func (s *Store) ArticleBody(dir string) (string, error) {
	p := ArticleBodyPath(dir)
	if !fs.ValidPath(p) {
		return "", &ContentError{Collection: "body", Path: p, Err: fmt.Errorf("invalid content directory %q", dir)}
	}
	b, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", &ContentError{Collection: "body", Path: p, Err: err}
	}
	return string(b), nil
}

// ArticleBodyPath is the path of an article body relative to the content root.
func ArticleBodyPath(dir string) string {
	return dataSubdir + "/" + strings.Trim(dir, "/") + "/" + bodyFile
}

func (s *Store) load(collection string, v any) error {
	p, err := s.locate(collection)
	if err != nil {
		return err
	}
	return s.decode(collection, p, v)
}

// locate finds the first existing file for collection, JSON first.
func (s *Store) locate(collection string) (string, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		p := path.Join(contentSubdir, collection+ext)
		if _, err := fs.Stat(s.fsys, p); err == nil {
			return p, nil
		}
	}
	return "", &ContentError{
		Collection: collection,
		Path:       path.Join(contentSubdir, collection+".json"),
		Err:        fs.ErrNotExist,
	}
}

func (s *Store) decode(collection, p string, v any) error {
	b, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return &ContentError{Collection: collection, Path: p, Err: err}
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return &ContentError{Collection: collection, Path: p, Err: errors.New("empty document")}
	}
	if path.Ext(p) == ".json" {
		err = decodeJSON(b, v)
	} else {
		err = decodeYAML(b, v)
	}
	if err != nil {
		return &ContentError{Collection: collection, Path: p, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

var errNullDocument = errors.New("document is null")

// decodeJSON requires b to hold exactly one non-null JSON value.
func decodeJSON(b []byte, v any) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errNullDocument
	}
	return json.Unmarshal(b, v)
}

// decodeYAML requires b to hold exactly one non-null YAML document.
func decodeYAML(b []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return err
		}
		return errors.New("more than one document")
	}
	if len(doc.Content) == 0 {
		return errNullDocument
	}
	if root := doc.Content[0]; root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return errNullDocument
	}
	return doc.Decode(v)
}

// isURLSegment accepts strings usable verbatim as one URL path segment.
func isURLSegment(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s == "." || s == ".." {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == '~':
		default:
			return false
		}
	}
	return true
}
