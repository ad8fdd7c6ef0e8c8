package services

import "strings"

// extractKeywords lowercases a title, strips punctuation and splits it into
// words, keeping only words longer than three characters. The result is a
// set, so duplicate words count once.
func extractKeywords(title string) map[string]struct{} {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	keywords := make(map[string]struct{})
	for _, word := range strings.Fields(b.String()) {
		if len(word) > 3 {
			keywords[word] = struct{}{}
		}
	}
	return keywords
}

// titleSimilarity computes the Jaccard index between the keyword sets of two
// titles. Two empty keyword sets are treated as dissimilar.
func titleSimilarity(a, b string) float64 {
	ka := extractKeywords(a)
	kb := extractKeywords(b)
	if len(ka) == 0 && len(kb) == 0 {
		return 0
	}

	intersection := 0
	for word := range ka {
		if _, ok := kb[word]; ok {
			intersection++
		}
	}
	union := len(ka) + len(kb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
