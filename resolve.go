package sitegen

// ResolveAuthor returns the team member referenced by a.AuthorID. The first
// member in collection order wins; ok is false when nothing matches.
func ResolveAuthor(a Article, members []TeamMember) (TeamMember, bool) {
	for _, m := range members {
		if m.ID == a.AuthorID {
			return m, true
		}
	}
	return TeamMember{}, false
}

// ResolveCategory returns the category referenced by a.CategoryID, with the
// same first-match rule as ResolveAuthor.
func ResolveCategory(a Article, categories []Category) (Category, bool) {
	for _, c := range categories {
		if c.ID == a.CategoryID {
			return c, true
		}
	}
	return Category{}, false
}

// ResolvedArticle is an article joined with its author and category.
// Author and Category are nil when the reference dangles.
type ResolvedArticle struct {
	Article  Article
	Author   *TeamMember
	Category *Category
}

// Resolve joins a against the given collections.
func Resolve(a Article, members []TeamMember, categories []Category) ResolvedArticle {
	r := ResolvedArticle{Article: a}
	if m, ok := ResolveAuthor(a, members); ok {
		r.Author = &m
	}
	if c, ok := ResolveCategory(a, categories); ok {
		r.Category = &c
	}
	return r
}
