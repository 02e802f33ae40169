package header

import (
	"sort"
	"strconv"
	"strings"

	"github.com/corvid-labs/httpcore/internal/codec"
	"github.com/corvid-labs/httpcore/status"
)

// Csv is a header whose value is a comma-separated list, tokenised with
// quoted-string list rules: items outside quoted segments are
// whitespace-stripped and quoted segments preserve whitespace. Every
// unescaped '"' opens or closes a quoted run and is dropped from the
// item; a '"' is never kept literally in an item.
type Csv struct {
	Items []string
}

// ParseCsv parses h's value as a comma-separated list.
func ParseCsv(h Header) Csv {
	items := codec.QuotedList(h.Value, codec.QuotedListOptions{})
	return Csv{Items: items}
}

// weightedItem pairs a surfaced item string with its parsed q value and
// original index. The index is not consulted by the sort; sort.SliceStable
// alone keeps equal weights in their original order.
type weightedItem struct {
	item  string
	q     float64
	index int
}

// OrderedCsv is a Csv additionally carrying a per-item quality weight
// ("q=" parameter), sorted by descending q.
type OrderedCsv struct {
	Items []string
}

// ParseOrderedCsv parses an Accept-Encoding-style weighted list:
//  1. Parse items via Csv.
//  2. Parse each item's parameters, extracting q (3dp precision, clamped
//     to [0,1]); a non-decimal q is a malformed-weight error.
//  3. Stable-sort by descending q.
//  4. If dropUnacceptable, remove items with q == 0.
//  5. Strip the q parameter from the surfaced item string.
func ParseOrderedCsv(h Header, dropUnacceptable bool) (OrderedCsv, error) {
	csv := ParseCsv(h)
	weighted := make([]weightedItem, 0, len(csv.Items))
	for i, raw := range csv.Items {
		itemHeader := Header{Name: "x", Value: raw}
		p := ParseParameterised(itemHeader, true)
		q := 1.0
		if qs, ok := p.Param("q"); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(qs), 64)
			if err != nil {
				return OrderedCsv{}, status.Newf(status.MalformedHeader, "malformed-weight: %q", qs)
			}
			q = clampQ(roundTo3dp(v))
		}
		surfaced := stripQParam(raw)
		weighted = append(weighted, weightedItem{item: surfaced, q: q, index: i})
	}
	sort.SliceStable(weighted, func(i, j int) bool {
		return weighted[i].q > weighted[j].q
	})
	out := make([]string, 0, len(weighted))
	for _, w := range weighted {
		if dropUnacceptable && w.q == 0 {
			continue
		}
		out = append(out, w.item)
	}
	return OrderedCsv{Items: out}, nil
}

func roundTo3dp(v float64) float64 {
	return float64(int64(v*1000+0.5)) / 1000
}

func clampQ(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// stripQParam returns item's primary value plus its non-q parameters,
// dropping only the q=... parameter. The kept parameters are rebuilt as
// "; name=value" with surrounding whitespace trimmed, not copied verbatim.
func stripQParam(item string) string {
	value, rest := splitAtUnquotedSemicolon(item)
	if rest == "" {
		return strings.TrimSpace(value)
	}
	entries, err := codec.KVList(rest, codec.KVOptions{PairDelimiter: ';', Separator: '='})
	if err != nil {
		return strings.TrimSpace(value)
	}
	var b strings.Builder
	b.WriteString(strings.TrimSpace(value))
	for _, e := range entries {
		if strings.EqualFold(strings.TrimSpace(e.Key), "q") {
			continue
		}
		b.WriteString("; ")
		b.WriteString(strings.TrimSpace(e.Key))
		if e.HasValue {
			b.WriteString("=")
			b.WriteString(strings.TrimSpace(e.Value))
		}
	}
	return b.String()
}
