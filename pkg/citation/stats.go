package citation

import "strings"

// Statistics summarizes the citations found in a text.
type Statistics struct {
	Total     int          `json:"total_citations"`
	ByType    map[Type]int `json:"citation_types"`
	Density   float64      `json:"citation_density"` // citations per 1000 words
	Words     int          `json:"word_count"`
	SpanBytes int          `json:"span_bytes"` // total bytes covered by citation spans
}

// Stats runs the detector over the text and aggregates counts by citation
// type plus citation density per thousand words.
func Stats(detector Detector, text string) (Statistics, error) {
	spans, err := detector.Detect(text)
	if err != nil {
		return Statistics{}, err
	}

	stats := Statistics{
		Total:  len(spans),
		ByType: make(map[Type]int),
		Words:  len(strings.Fields(text)),
	}
	for _, span := range spans {
		stats.ByType[span.Type]++
		stats.SpanBytes += span.Len()
	}
	if stats.Words > 0 {
		stats.Density = float64(stats.Total) / float64(stats.Words) * 1000
	}
	return stats, nil
}
