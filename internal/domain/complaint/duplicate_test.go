package complaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "civicdesk/internal/domain/complaint/valueobjects"
)

func windowComplaint(t *testing.T, id uint, embedding []float32) *Complaint {
	t.Helper()

	c, err := NewComplaint("overflowing garbage bin", "MG Road", vo.CategoryGarbage, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetID(id))
	c.SetEmbedding(embedding)
	return c
}

func TestDuplicateDetector_EmptyWindow(t *testing.T) {
	detector := NewDuplicateDetector()

	result := detector.Detect([]float32{1, 0, 0}, nil)

	assert.False(t, result.IsDuplicate)
	assert.Zero(t, result.Similarity)
	assert.Nil(t, result.MatchingComplaintID)
	assert.Empty(t, result.MatchedField)
}

func TestDuplicateDetector_NoCandidateEmbedding(t *testing.T) {
	detector := NewDuplicateDetector()
	window := []*Complaint{windowComplaint(t, 1, []float32{1, 0, 0})}

	result := detector.Detect(nil, window)

	assert.False(t, result.IsDuplicate)
	assert.Zero(t, result.Similarity)
	assert.Nil(t, result.MatchingComplaintID)
}

func TestDuplicateDetector_WindowWithoutUsableEmbeddings(t *testing.T) {
	detector := NewDuplicateDetector()
	window := []*Complaint{
		windowComplaint(t, 1, nil),
		windowComplaint(t, 2, nil),
		nil,
	}

	result := detector.Detect([]float32{1, 0, 0}, window)

	assert.False(t, result.IsDuplicate)
	assert.Nil(t, result.MatchingComplaintID)
}

func TestDuplicateDetector_IdenticalEmbeddingIsDuplicate(t *testing.T) {
	detector := NewDuplicateDetector()
	embedding := []float32{0.3, 0.5, 0.8}
	window := []*Complaint{windowComplaint(t, 7, embedding)}

	result := detector.Detect(embedding, window)

	require.NotNil(t, result.MatchingComplaintID)
	assert.True(t, result.IsDuplicate)
	assert.InDelta(t, 1.0, result.Similarity, 1e-9)
	assert.Equal(t, uint(7), *result.MatchingComplaintID)
	assert.Equal(t, MatchedFieldText, result.MatchedField)
}

func TestDuplicateDetector_ThresholdIsStrict(t *testing.T) {
	detector := NewDuplicateDetector()

	// cos({1,0,0,0,0}, {17,9,5,2,1}) = 17/sqrt(1*400) = 17/20 = 0.85.
	// Every intermediate value is exact in floating point, so the best
	// similarity lands exactly on the threshold. The comparison is
	// strictly greater-than, so this is not a duplicate.
	atThreshold := detector.Detect([]float32{1, 0, 0, 0, 0}, []*Complaint{
		windowComplaint(t, 3, []float32{17, 9, 5, 2, 1}),
	})
	assert.Equal(t, DuplicateThreshold, atThreshold.Similarity)
	assert.False(t, atThreshold.IsDuplicate)
	require.NotNil(t, atThreshold.MatchingComplaintID)
	assert.Equal(t, uint(3), *atThreshold.MatchingComplaintID)
	assert.Equal(t, MatchedFieldText, atThreshold.MatchedField)

	candidate := []float32{1, 0}

	// cos ≈ 0.8480, just under the threshold.
	below := detector.Detect(candidate, []*Complaint{
		windowComplaint(t, 3, []float32{0.848, 0.53}),
	})
	assert.InDelta(t, 0.848, below.Similarity, 1e-2)
	assert.False(t, below.IsDuplicate)

	// cos ≈ 0.8601, just over the threshold.
	above := detector.Detect(candidate, []*Complaint{
		windowComplaint(t, 4, []float32{0.86, 0.51}),
	})
	assert.True(t, above.IsDuplicate)
}

func TestDuplicateDetector_PicksBestMatch(t *testing.T) {
	detector := NewDuplicateDetector()
	candidate := []float32{1, 0, 0}
	window := []*Complaint{
		windowComplaint(t, 1, []float32{0, 1, 0}),
		windowComplaint(t, 2, nil),
		windowComplaint(t, 3, []float32{0.9, 0.1, 0}),
		windowComplaint(t, 4, []float32{0.5, 0.5, 0}),
	}

	result := detector.Detect(candidate, window)

	require.NotNil(t, result.MatchingComplaintID)
	assert.Equal(t, uint(3), *result.MatchingComplaintID)
	assert.True(t, result.IsDuplicate)
}

func TestDuplicateDetector_TiesKeepFirstSeen(t *testing.T) {
	detector := NewDuplicateDetector()
	candidate := []float32{1, 0}
	window := []*Complaint{
		windowComplaint(t, 10, []float32{2, 0}),
		windowComplaint(t, 11, []float32{3, 0}),
	}

	result := detector.Detect(candidate, window)

	require.NotNil(t, result.MatchingComplaintID)
	assert.Equal(t, uint(10), *result.MatchingComplaintID)
}

func TestDuplicateDetector_DoesNotMutateWindow(t *testing.T) {
	detector := NewDuplicateDetector()
	window := []*Complaint{
		windowComplaint(t, 1, []float32{0, 1}),
		windowComplaint(t, 2, []float32{1, 0}),
	}

	detector.Detect([]float32{1, 0}, window)

	assert.Equal(t, uint(1), window[0].ID())
	assert.Equal(t, uint(2), window[1].ID())
}
