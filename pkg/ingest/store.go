package ingest

import (
	"strings"
	"time"
)

// Kind labels what an upload contains, detected from its filename.
type Kind string

const (
	KindInventory Kind = "Inventory"
	KindFindings  Kind = "DLP Findings"
	KindUnknown   Kind = "Unknown"
)

// DetectKind guesses an upload's kind from its filename, matching the
// conventions users already follow ("inventory_q3.csv", "dlp-scan.csv").
func DetectKind(filename string) Kind {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "inv"):
		return KindInventory
	case strings.Contains(name, "dlp"):
		return KindFindings
	default:
		return KindUnknown
	}
}

// Upload is one accepted file and when it arrived.
type Upload struct {
	Name       string
	Kind       Kind
	Size       int64
	UploadedAt time.Time
}

// Store is an append-only history of accepted uploads owned by the
// calling session. The pipeline itself never touches it; it only
// exists so a caller can answer "which file of each kind is current".
type Store struct {
	uploads []Upload
	now     func() time.Time
}

// NewStore returns an empty upload history.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add records an upload and returns its entry.
func (s *Store) Add(name string, size int64) Upload {
	u := Upload{
		Name:       name,
		Kind:       DetectKind(name),
		Size:       size,
		UploadedAt: s.now(),
	}
	s.uploads = append(s.uploads, u)
	return u
}

// All returns the history in arrival order.
func (s *Store) All() []Upload {
	out := make([]Upload, len(s.uploads))
	copy(out, s.uploads)
	return out
}

// Latest returns the most recent upload of the given kind.
func (s *Store) Latest(kind Kind) (Upload, bool) {
	for i := len(s.uploads) - 1; i >= 0; i-- {
		if s.uploads[i].Kind == kind {
			return s.uploads[i], true
		}
	}
	return Upload{}, false
}
