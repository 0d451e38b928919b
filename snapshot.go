package sitegen

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned when a requested article does not exist.
var ErrNotFound = errors.New("article not found")

// Snapshot is every collection of one build, loaded together. It is never
// mutated after LoadSnapshot returns, so page generations may share it.
type Snapshot struct {
	Site       SiteConfig
	Categories []Category
	Team       []TeamMember
	Articles   []Article
	About      AboutContent
	Footer     FooterContent
}

// LoadSnapshot reads all collections concurrently and waits for every read.
// The first failure is returned; nothing is retried.
func LoadSnapshot(ctx context.Context, s *Store) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var snap Snapshot
	var g errgroup.Group

	// Each goroutine writes a distinct field.
	g.Go(func() (err error) {
		snap.Site, err = s.SiteConfig()
		return err
	})
	g.Go(func() (err error) {
		snap.Categories, err = s.Categories()
		return err
	})
	g.Go(func() (err error) {
		snap.Team, err = s.TeamMembers()
		return err
	})
	g.Go(func() (err error) {
		snap.Articles, err = s.Articles()
		return err
	})
	g.Go(func() (err error) {
		snap.About, err = s.AboutContent()
		return err
	})
	g.Go(func() (err error) {
		snap.Footer, err = s.FooterContent()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Article looks up an article by id.
func (s *Snapshot) Article(id string) (Article, error) {
	for _, a := range s.Articles {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, ErrNotFound
}

// ArticleIDs lists the ids to pre-generate, in collection order.
func (s *Snapshot) ArticleIDs() []string {
	ids := make([]string, 0, len(s.Articles))
	for _, a := range s.Articles {
		ids = append(ids, a.ID)
	}
	return ids
}

// Resolve joins a with this snapshot's team and categories.
func (s *Snapshot) Resolve(a Article) ResolvedArticle {
	return Resolve(a, s.Team, s.Categories)
}
