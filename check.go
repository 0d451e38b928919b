package sitegen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Severity ranks a Finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a content problem reported by Check. Findings never stop a
// build; dangling references in particular are valid content.
type Finding struct {
	Severity Severity
	Subject  string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Subject, f.Message)
}

const avatarsSubdir = "avatars"

// Check loads the content and reports integrity problems across collections.
// Only a failure to load the collections themselves is returned as an error.
func (a *App) Check(ctx context.Context) ([]Finding, error) {
	snap, err := LoadSnapshot(ctx, a.Store)
	if err != nil {
		return nil, err
	}
	findings := CheckSnapshot(snap, a.Store)
	for _, f := range findings {
		if f.Severity == SeverityError {
			a.Logger().Errorf("%s", f)
		} else {
			a.Logger().Warnf("%s", f)
		}
	}
	a.Logger().Infof("checked %d articles: %d findings", len(snap.Articles), len(findings))
	return findings, nil
}

// CheckSnapshot inspects snap against the files in store.
func CheckSnapshot(snap *Snapshot, store *Store) []Finding {
	var out []Finding
	add := func(sev Severity, subject, format string, args ...any) {
		out = append(out, Finding{Severity: sev, Subject: subject, Message: fmt.Sprintf(format, args...)})
	}

	seenTeam := make(map[int]bool)
	for _, m := range snap.Team {
		subject := fmt.Sprintf("team member %d", m.ID)
		if seenTeam[m.ID] {
			add(SeverityWarning, subject, "duplicate id; only the first %q entry is used", m.Name)
		}
		seenTeam[m.ID] = true
		if m.AvatarFile != "" && !exists(store.FS(), path.Join(avatarsSubdir, m.AvatarFile)) {
			add(SeverityWarning, subject, "avatar %s not found", m.AvatarFile)
		}
	}
	seenCategory := make(map[int]bool)
	for _, c := range snap.Categories {
		if seenCategory[c.ID] {
			add(SeverityWarning, fmt.Sprintf("category %d", c.ID), "duplicate id; only the first %q entry is used", c.Name)
		}
		seenCategory[c.ID] = true
	}

	for _, art := range snap.Articles {
		subject := "article " + art.ID
		r := snap.Resolve(art)
		if r.Author == nil {
			add(SeverityWarning, subject, "author %d does not exist; author fields will be omitted", art.AuthorID)
		}
		if r.Category == nil {
			add(SeverityWarning, subject, "category %d does not exist; section will be omitted", art.CategoryID)
		}
		if _, err := store.ArticleBody(art.ContentDirectory); err != nil {
			add(SeverityError, subject, "body: %v", err)
		}
		if art.FeaturedImageFile == "" {
			continue
		}
		img := path.Join(dataSubdir, art.ContentDirectory, art.FeaturedImageFile)
		info, err := ProbeImage(store.FS(), img)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			add(SeverityError, subject, "featured image %s not found", img)
		case err != nil:
			add(SeverityWarning, subject, "%v", err)
		case !info.PreviewSized():
			add(SeverityWarning, subject, "featured image is %dx%d, previews declare %dx%d",
				info.Width, info.Height, previewImageWidth, previewImageHeight)
		}
	}
	return out
}

// HasErrors reports whether any finding is error-level.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func exists(fsys fs.FS, p string) bool {
	_, err := fs.Stat(fsys, p)
	return err == nil
}
