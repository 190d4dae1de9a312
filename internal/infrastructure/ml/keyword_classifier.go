package ml

import (
	"context"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	vo "civicdesk/internal/domain/complaint/valueobjects"
)

// categoryKeywords are the rule-based fallback vocabulary, matched
// case-insensitively against the complaint description.
var categoryKeywords = map[vo.Category][]string{
	vo.CategoryGarbage: {
		"garbage", "trash", "waste", "dump", "litter", "rubbish",
		"dustbin", "bin overflow", "smell", "rotting",
	},
	vo.CategoryRoadDamage: {
		"pothole", "road damage", "broken road", "crack", "asphalt",
		"speed breaker", "road cave", "uneven road",
	},
	vo.CategoryStreetlight: {
		"streetlight", "street light", "lamp post", "light not working",
		"dark street", "flickering light", "bulb",
	},
	vo.CategoryWaterLeak: {
		"water leak", "pipe burst", "leaking", "water supply",
		"tap water", "pipeline", "water wastage",
	},
	vo.CategoryDrainage: {
		"drain", "drainage", "sewage", "sewer", "overflow", "blocked drain",
		"waterlogging", "stagnant water", "manhole",
	},
}

// KeywordClassifier is the rule-based fallback used when no model backend
// is configured. It builds a single Aho-Corasick automaton over all
// category keywords and scores categories by hit count.
type KeywordClassifier struct {
	matcher    *ahocorasick.Matcher
	keywords   []string
	categories []vo.Category
}

func NewKeywordClassifier() *KeywordClassifier {
	var keywords []string
	var categories []vo.Category

	for _, category := range vo.AllCategories() {
		for _, kw := range categoryKeywords[category] {
			keywords = append(keywords, kw)
			categories = append(categories, category)
		}
	}

	return &KeywordClassifier{
		matcher:    ahocorasick.NewStringMatcher(keywords),
		keywords:   keywords,
		categories: categories,
	}
}

func (k *KeywordClassifier) Classify(ctx context.Context, text string) (*Prediction, error) {
	normalized := strings.ToLower(text)

	hits := k.matcher.Match([]byte(normalized))

	counts := make(map[vo.Category]int)
	total := 0
	for _, hitIndex := range hits {
		if hitIndex >= len(k.categories) {
			continue
		}
		counts[k.categories[hitIndex]]++
		total++
	}

	if total == 0 {
		return &Prediction{
			Category:   vo.CategoryOther.String(),
			Confidence: 0,
			Scores:     map[string]float64{},
		}, nil
	}

	scores := make(map[string]float64, len(counts))
	best := vo.CategoryOther
	bestCount := 0
	for _, category := range vo.AllCategories() {
		count, ok := counts[category]
		if !ok {
			continue
		}
		scores[category.String()] = float64(count) / float64(total)
		if count > bestCount {
			best = category
			bestCount = count
		}
	}

	return &Prediction{
		Category:   best.String(),
		Confidence: float64(bestCount) / float64(total),
		Scores:     scores,
	}, nil
}
