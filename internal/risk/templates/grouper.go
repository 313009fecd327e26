// Package templates groups and searches the risk scenario template catalogue.
package templates

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"riskdesk/internal/risk/models"
)

// DefaultLocale orders domains the way French-speaking users expect.
const DefaultLocale = "fr"

// DomainGroup is one domain and its matching templates in input order.
type DomainGroup struct {
	Domain    string             `json:"domain"`
	Templates []*models.Template `json:"templates"`
}

type options struct {
	locale language.Tag
}

type Option func(*options)

// WithLocale sets the collation locale for domain ordering. Unparseable tags
// fall back to language.Und (root collation).
func WithLocale(tag string) Option {
	return func(o *options) {
		t, err := language.Parse(tag)
		if err != nil {
			t = language.Und
		}
		o.locale = t
	}
}

// Group filters templates by term and groups them by domain.
//
// A template matches when its description or domain contains term, ignoring
// case; an empty term matches everything. Members without an ID or a
// description are dropped, and so are groups left empty. Groups are sorted by
// domain with locale-aware collation, then byte order for collation ties.
// Group never fails: nil input and nil entries are ignored.
func Group(templates []*models.Template, term string, opts ...Option) []DomainGroup {
	o := options{locale: language.MustParse(DefaultLocale)}
	for _, opt := range opts {
		opt(&o)
	}

	// Casers and collators keep internal buffers, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(term)

	index := make(map[string]int)
	groups := make([]DomainGroup, 0)
	for _, t := range templates {
		if t == nil || !matches(fold, t, needle) {
			continue
		}
		i, ok := index[t.Domain]
		if !ok {
			i = len(groups)
			index[t.Domain] = i
			groups = append(groups, DomainGroup{Domain: t.Domain})
		}
		if t.ID.IsNil() || t.ScenarioDescription == "" {
			continue
		}
		groups[i].Templates = append(groups[i].Templates, t)
	}

	groups = slices.DeleteFunc(groups, func(g DomainGroup) bool { return len(g.Templates) == 0 })

	col := collate.New(o.locale)
	slices.SortStableFunc(groups, func(a, b DomainGroup) int {
		if c := col.CompareString(a.Domain, b.Domain); c != 0 {
			return c
		}
		return strings.Compare(a.Domain, b.Domain)
	})
	return groups
}

func matches(fold cases.Caser, t *models.Template, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold.String(t.ScenarioDescription), needle) ||
		strings.Contains(fold.String(t.Domain), needle)
}
