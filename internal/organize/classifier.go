// Package organize implements the move-planning and reversible-execution
// engine: classifying files into category buckets, resolving destination
// collisions, recording every completed move to an append-only log, and
// replaying that log in reverse to restore the original layout.
package organize

import (
	"strings"

	"github.com/ryanm101/organize/internal/config"
)

// Reserved bucket names that exist outside the category table.
const (
	// OtherBucket receives files whose extension matches no category.
	OtherBucket = "other"
	// NoExtBucket receives files without an extension.
	NoExtBucket = "no_extension"
)

// Classifier maps file extensions to category bucket names.
// It is immutable after construction and safe for reuse across runs.
type Classifier struct {
	byExt map[string]string
}

// NewClassifier builds a classifier from an ordered category table.
// If the same extension appears in more than one bucket, the bucket
// listed first owns it; later claims are ignored without error.
func NewClassifier(buckets []config.Bucket) *Classifier {
	byExt := make(map[string]string)
	for _, b := range buckets {
		for _, ext := range b.Extensions {
			ext = normalizeExt(ext)
			if ext == "" {
				continue
			}
			if _, claimed := byExt[ext]; !claimed {
				byExt[ext] = b.Name
			}
		}
	}
	return &Classifier{byExt: byExt}
}

// PickBucket returns the bucket name owning the given extension.
// The extension may be empty or carry a leading dot, and is matched
// case-insensitively. Unknown extensions map to OtherBucket; empty
// ones to NoExtBucket.
func (c *Classifier) PickBucket(ext string) string {
	ext = normalizeExt(ext)
	if ext == "" {
		return NoExtBucket
	}
	if bucket, ok := c.byExt[ext]; ok {
		return bucket
	}
	return OtherBucket
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimLeft(ext, "."))
}
