package citation

import (
	"regexp"
	"strings"
)

// reporterPattern matches the common US case reporter abbreviations, longest
// forms first so e.g. "F. Supp. 2d" is not cut short to "F. Supp.".
const reporterPattern = `U\.S\.|S\.\s?Ct\.|L\.\s?Ed\.(?:\s?2d)?|F\.\s?Supp\.(?:\s?[23]d)?|F\.[234]d|Cal\.\s?Rptr\.(?:\s?[23]d)?|N\.E\.(?:[23]d)?|N\.W\.2d|S\.E\.2d|S\.W\.[23]d|P\.[23]d|A\.[23]d|So\.\s?[23]d`

// partyPattern matches one party name in a case caption: a capitalized word
// followed by further name words (allowing connectives like "of" and "the").
const partyPattern = `[A-Z][a-zA-Z'’\-\.]*(?:\s+(?:of|the|and|for|[A-Z][a-zA-Z'’\-\.]*))*`

// CaselawDetector locates US caselaw citations with regular expressions:
//   - Full case citations: "Brown v. Board of Education, 347 U.S. 483 (1954)"
//   - In re / Ex parte captions: "In re Gault, 387 U.S. 1 (1967)"
//   - Short-form citations: "Brown, 347 U.S. at 489"
//   - Supra references: "Brown, supra, at 491"
//   - Id. citations: "Id. at 493"
//   - Statutory citations: "42 U.S.C. § 1983", "45 C.F.R. Part 164"
//
// A comma immediately following a citation is treated as citation
// punctuation and included in the span, so that removing the span never
// strands a comma in the surrounding prose.
type CaselawDetector struct {
	fullCasePattern  *regexp.Regexp // Brown v. Board, 347 U.S. 483 (1954)
	inRePattern      *regexp.Regexp // In re Gault, 387 U.S. 1 (1967)
	shortCasePattern *regexp.Regexp // Brown, 347 U.S. at 489
	supraPattern     *regexp.Regexp // Brown, supra, at 491
	idPattern        *regexp.Regexp // Id. at 493
	uscPattern       *regexp.Regexp // 42 U.S.C. § 1983
	cfrPattern       *regexp.Regexp // 45 C.F.R. Part 164
}

// NewCaselawDetector creates a caselaw citation detector with compiled
// patterns.
func NewCaselawDetector() *CaselawDetector {
	return &CaselawDetector{
		// Full case citation: party v. party, volume reporter page, optional
		// pincite, optional parenthetical with year, optional trailing comma.
		fullCasePattern: regexp.MustCompile(
			`(` + partyPattern + `)\s+v(?:s?\.?|ersus)\s+(` + partyPattern + `),?\s+(\d+)\s+(` + reporterPattern + `)\s+(\d+)(?:,\s*\d+(?:[-–]\d+)?)?(?:\s+\(([^)]*?(\d{4}))\))?,?`),

		// In re / Ex parte captions followed by a full citation.
		inRePattern: regexp.MustCompile(
			`(?:In\s+re|Ex\s+parte)\s+(` + partyPattern + `),?\s+(\d+)\s+(` + reporterPattern + `)\s+(\d+)(?:,\s*\d+(?:[-–]\d+)?)?(?:\s+\(([^)]*?(\d{4}))\))?,?`),

		// Short form: single party name, volume reporter "at" page.
		shortCasePattern: regexp.MustCompile(
			`([A-Z][a-zA-Z'’\-]+),?\s+(\d+)\s+(` + reporterPattern + `)\s+at\s+(\d+(?:[-–]\d+)?),?`),

		// Supra reference with optional pincite.
		supraPattern: regexp.MustCompile(
			`([A-Z][a-zA-Z'’\-]+),\s+supra(?:,?\s+at\s+\d+(?:[-–]\d+)?)?,?`),

		// Id. citation with optional pincite.
		idPattern: regexp.MustCompile(
			`\b[Ii]d\.(?:\s+at\s+\d+(?:[-–]\d+)?)?,?`),

		// U.S. Code: section symbol or spelled-out Section, ranges, et seq.
		uscPattern: regexp.MustCompile(
			`(\d+)\s+U\.?S\.?C\.?\s+(?:§§?|Section|Sec\.?)\s*(\d+[a-z]?(?:\([a-zA-Z0-9]+\))*)(?:[-–]\d+[a-z]?)?(?:\s+et\s+seq\.?)?,?`),

		// C.F.R.: Part(s) or section symbol forms.
		cfrPattern: regexp.MustCompile(
			`(\d+)\s+C\.?F\.?R\.?\s+(?:Parts?\s+|§§?\s*)(\d+(?:\.\d+)?)(?:\s+and\s+\d+)?,?`),
	}
}

// Name returns the detector's registry name.
func (d *CaselawDetector) Name() string {
	return "caselaw"
}

// Detect extracts all caselaw citation spans from the text, most specific
// patterns first so a short-form or statutory match inside a full citation
// is never reported separately. The result is sorted by start offset and
// free of overlaps.
func (d *CaselawDetector) Detect(text string) ([]Span, error) {
	var spans []Span

	spans = appendMatches(spans, text, d.fullCasePattern, TypeFull, d.fullCaseSpan)
	for i := range spans {
		trimSignalPrefix(&spans[i], text)
	}
	spans = appendMatches(spans, text, d.inRePattern, TypeFull, d.inReSpan)
	spans = appendMatches(spans, text, d.shortCasePattern, TypeShort, d.shortCaseSpan)
	spans = appendMatches(spans, text, d.supraPattern, TypeSupra, nil)
	spans = appendMatches(spans, text, d.idPattern, TypeID, nil)
	spans = appendMatches(spans, text, d.uscPattern, TypeStatute, nil)
	spans = appendMatches(spans, text, d.cfrPattern, TypeStatute, nil)

	SortByStart(spans)
	return dedupeOverlaps(spans), nil
}

// signalWords are citation signals that precede a case caption. They are
// capitalized like party names, so the caption pattern can swallow them;
// trimSignalPrefix carves them back out of the span so surrounding prose
// such as "See" survives span removal.
var signalWords = map[string]bool{
	"See": true, "E.g.": true, "Cf.": true, "But": true, "Compare": true,
	"Accord": true, "Contra": true, "Citing": true, "Quoting": true,
	"Also": true, "Under": true,
}

// trimSignalPrefix advances the span start past any leading citation-signal
// words captured by the caption pattern.
func trimSignalPrefix(span *Span, text string) {
	for {
		rest := text[span.Start:span.End]
		wordEnd := strings.IndexAny(rest, " \t\n")
		if wordEnd < 0 {
			return
		}
		if !signalWords[rest[:wordEnd]] {
			return
		}
		span.Start += wordEnd
		for span.Start < span.End && (text[span.Start] == ' ' || text[span.Start] == '\t' || text[span.Start] == '\n') {
			span.Start++
		}
		span.Text = text[span.Start:span.End]
	}
}

// metadataFunc builds citation metadata from submatch index pairs.
type metadataFunc func(text string, idx []int) Metadata

// appendMatches runs one pattern over the text and appends a span per match.
func appendMatches(spans []Span, text string, pattern *regexp.Regexp, citType Type, meta metadataFunc) []Span {
	for _, idx := range pattern.FindAllStringSubmatchIndex(text, -1) {
		span := Span{
			Start: idx[0],
			End:   idx[1],
			Text:  text[idx[0]:idx[1]],
			Type:  citType,
		}
		if meta != nil {
			span.Metadata = meta(text, idx)
		}
		spans = append(spans, span)
	}
	return spans
}

// fullCaseSpan extracts metadata from a full case citation match.
// Group layout: 1 plaintiff, 2 defendant, 3 volume, 4 reporter, 5 page,
// 6 parenthetical, 7 year.
func (d *CaselawDetector) fullCaseSpan(text string, idx []int) Metadata {
	return d.caseMetadata(text, idx, 3, 4, 5, 6, 7)
}

// inReSpan extracts metadata from an In re / Ex parte citation match.
// Group layout: 1 party, 2 volume, 3 reporter, 4 page, 5 parenthetical,
// 6 year.
func (d *CaselawDetector) inReSpan(text string, idx []int) Metadata {
	return d.caseMetadata(text, idx, 2, 3, 4, 5, 6)
}

// shortCaseSpan extracts metadata from a short-form citation match.
// Group layout: 1 party, 2 volume, 3 reporter, 4 page.
func (d *CaselawDetector) shortCaseSpan(text string, idx []int) Metadata {
	return Metadata{
		Volume:   group(text, idx, 2),
		Reporter: normalizeReporter(group(text, idx, 3)),
		Page:     group(text, idx, 4),
	}
}

// caseMetadata assembles metadata from volume/reporter/page/parenthetical/
// year group numbers, shared by the full and In re patterns.
func (d *CaselawDetector) caseMetadata(text string, idx []int, vol, rep, page, paren, year int) Metadata {
	md := Metadata{
		Volume:   group(text, idx, vol),
		Reporter: normalizeReporter(group(text, idx, rep)),
		Page:     group(text, idx, page),
		Year:     group(text, idx, year),
	}
	// Keep the parenthetical only when it carries more than the year,
	// e.g. "(2d Cir. 2000)".
	if inner := group(text, idx, paren); inner != "" && inner != md.Year {
		md.Parenthetical = inner
	}
	return md
}

// group returns the text of submatch n, or "" if it did not participate.
func group(text string, idx []int, n int) string {
	if 2*n+1 >= len(idx) || idx[2*n] < 0 {
		return ""
	}
	return text[idx[2*n]:idx[2*n+1]]
}

// dedupeOverlaps drops spans that overlap an already-accepted earlier span.
// The input must be sorted by start offset (longest first on ties), so the
// most specific pattern's match wins each region.
func dedupeOverlaps(spans []Span) []Span {
	deduped := make([]Span, 0, len(spans))
	for _, candidate := range spans {
		overlapping := false
		for _, accepted := range deduped {
			if candidate.Overlaps(accepted) {
				overlapping = true
				break
			}
		}
		if !overlapping {
			deduped = append(deduped, candidate)
		}
	}
	return deduped
}

// normalizeReporter normalizes reporter abbreviations to standard form.
func normalizeReporter(reporter string) string {
	reporter = strings.TrimSpace(reporter)

	switch {
	case strings.Contains(reporter, "U.S"):
		return "U.S."
	case strings.Contains(reporter, "S.") && strings.Contains(reporter, "Ct"):
		return "S. Ct."
	case strings.HasPrefix(reporter, "F.") && strings.Contains(reporter, "Supp"):
		return "F. Supp."
	default:
		return reporter
	}
}
