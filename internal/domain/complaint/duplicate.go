package complaint

// DuplicateThreshold is the similarity above which (strictly) a candidate
// is treated as a duplicate of an existing complaint.
const DuplicateThreshold = 0.85

// MatchedFieldText is the only comparison channel implemented: the
// description embedding. Image or combined matching is an extension point.
const MatchedFieldText = "text"

// DuplicateCheck is the detector's result. MatchingComplaintID is a weak,
// lookup-only reference; it is nil when no usable match exists.
type DuplicateCheck struct {
	IsDuplicate         bool
	Similarity          float64
	MatchingComplaintID *uint
	MatchedField        string
}

// DuplicateDetector compares a candidate embedding against a bounded
// window of recent complaints. It holds no state and never mutates the
// window.
type DuplicateDetector struct{}

func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{}
}

// Detect finds the single closest match in the window by cosine
// similarity. Ties keep the first-seen entry (the window is not
// reordered). Entries lacking an embedding are skipped, and a candidate
// without an embedding short-circuits to the non-duplicate result since
// every comparison would be a meaningless zero.
func (d *DuplicateDetector) Detect(candidateEmbedding []float32, recentWindow []*Complaint) DuplicateCheck {
	if len(candidateEmbedding) == 0 || len(recentWindow) == 0 {
		return DuplicateCheck{}
	}

	var (
		bestSimilarity float64
		bestID         *uint
	)

	for _, prior := range recentWindow {
		if prior == nil || !prior.HasEmbedding() {
			continue
		}
		similarity := CosineSimilarity(candidateEmbedding, prior.embedding)
		if bestID == nil || similarity > bestSimilarity {
			bestSimilarity = similarity
			matchID := prior.ID()
			bestID = &matchID
		}
	}

	if bestID == nil {
		return DuplicateCheck{}
	}

	// Cosine can go negative for opposed vectors; the reported similarity
	// stays in [0,1].
	if bestSimilarity < 0 {
		bestSimilarity = 0
	}

	return DuplicateCheck{
		IsDuplicate:         bestSimilarity > DuplicateThreshold,
		Similarity:          bestSimilarity,
		MatchingComplaintID: bestID,
		MatchedField:        MatchedFieldText,
	}
}
