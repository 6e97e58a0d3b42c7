package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
)

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s_-]+`)
)

// maxSlugAttempts bounds the collision loop on pathological titles.
const maxSlugAttempts = 1000

// Slugify derives a URL-safe identifier from a title: lowercase,
// non-word characters stripped, whitespace and underscores collapsed
// into single hyphens, edge hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// uniqueSlug appends -1, -2, ... until no other post uses the slug.
// excludeID skips the post currently being edited.
func (s *Blog) uniqueSlug(ctx context.Context, base, excludeID string) (string, error) {
	if base == "" {
		base = "post"
	}

	slug := base
	for i := 1; i <= maxSlugAttempts; i++ {
		exists, err := s.dao.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", errors.Wrapf(err, "check slug %q", slug)
		}
		if !exists {
			return slug, nil
		}

		slug = base + "-" + strconv.Itoa(i)
	}

	return "", errors.Errorf("no unique slug found for %q", base)
}
