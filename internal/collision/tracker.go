// Package collision detects fingerprint collisions among the entries added
// to an archive.Bundle (§4.8): two different labels whose payloads share an
// xxHash64 fingerprint, and the simpler case of the same label being added
// twice.
package collision

import "github.com/wxcodec/g2complex/errs"

// Tracker tracks bundle entry labels and detects fingerprint collisions
// during archive assembly. It maintains a map of fingerprint-to-label
// mappings and an ordered list of labels for the bundle's directory.
type Tracker struct {
	labels       map[uint64]string
	labelsList   []string
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		labels:     make(map[uint64]string),
		labelsList: make([]string, 0),
	}
}

// Track records fingerprint under label. It returns errs.ErrInvalidTemplate
// if label is empty, or errs.ErrCorruptBundle if label was already used for
// a different fingerprint within this bundle (the caller is re-adding a
// stale entry under a name that now means something else). A genuine hash
// collision — same fingerprint, different label — is not an error: it only
// sets HasCollision, since the bundle directory disambiguates entries by
// label, not by fingerprint alone.
func (t *Tracker) Track(label string, fingerprint uint64) error {
	if label == "" {
		return errs.ErrInvalidTemplate
	}

	for fp, lbl := range t.labels {
		if lbl == label && fp != fingerprint {
			return errs.ErrCorruptBundle
		}
	}

	if existing, exists := t.labels[fingerprint]; exists && existing != label {
		t.hasCollision = true
	}

	t.labels[fingerprint] = label
	t.labelsList = append(t.labelsList, label)

	return nil
}

// HasCollision reports whether two distinct labels shared a fingerprint.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Labels returns the ordered list of tracked labels.
func (t *Tracker) Labels() []string {
	return t.labelsList
}

// Count returns the number of tracked entries.
func (t *Tracker) Count() int {
	return len(t.labelsList)
}

// Reset clears all tracked entries and collision state, allowing the
// tracker to be reused for assembling a new bundle.
func (t *Tracker) Reset() {
	for k := range t.labels {
		delete(t.labels, k)
	}
	t.labelsList = t.labelsList[:0]
	t.hasCollision = false
}
