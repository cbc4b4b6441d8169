package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MGTheTrain/scrimhub/internal/pkg/utils"
)

// slugRetries bounds how often a create is retried after losing a slug race
const slugRetries = 3

// uniqueSlug slugifies name and returns it, or base-N with N one past the highest
// suffix already stored
func uniqueSlug(ctx context.Context, name, fallback string, taken func(ctx context.Context, base string) ([]string, error)) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = fallback
	}
	existing, err := taken(ctx, base)
	if err != nil {
		return "", fmt.Errorf("failed to check slug: %w", err)
	}
	return nextSlug(base, existing), nil
}

func nextSlug(base string, existing []string) string {
	baseTaken := false
	highest := 1
	for _, slug := range existing {
		if slug == base {
			baseTaken = true
			continue
		}
		suffix, ok := strings.CutPrefix(slug, base+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(suffix); err == nil && n > highest {
			highest = n
		}
	}
	if !baseTaken {
		return base
	}
	return fmt.Sprintf("%s-%d", base, highest+1)
}

// retryOnSlugConflict reruns fn while a concurrent writer claims the chosen slug first
func retryOnSlugConflict(conflict error, fn func() error) error {
	var err error
	for attempt := 0; attempt < slugRetries; attempt++ {
		if err = fn(); !errors.Is(err, conflict) {
			return err
		}
	}
	return err
}
