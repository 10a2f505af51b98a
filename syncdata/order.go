package syncdata

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/gwos/syncdatagen/errors"
)

// Comparator defines the variant ordering within a group,
// returns negative, zero, or positive like strings.Compare
type Comparator func(a, b *Data) int

// ByFullyQualifiedType compares byte-wise fully-qualified type names,
// so the order does not depend on locale or collation
func ByFullyQualifiedType(a, b *Data) int {
	return strings.Compare(a.FullyQualifiedType(), b.FullyQualifiedType())
}

// Order returns records in variant order and sets VariantIndex on each:
// conditional records first, then unconditional ones, each group sorted by cmp.
// At least one unconditional record is required to build the variant.
func Order(datas []*Data, cmp Comparator) ([]*Data, error) {
	if cmp == nil {
		cmp = ByFullyQualifiedType
	}
	var conditional, unconditional []*Data
	for _, d := range datas {
		if d.IsConditional() {
			conditional = append(conditional, d)
		} else {
			unconditional = append(unconditional, d)
		}
	}
	if len(unconditional) == 0 {
		return nil, fmt.Errorf("%w (this will make it hard to construct the variant in a way that will compile)",
			errors.ErrNoUnconditional)
	}
	slices.SortStableFunc(conditional, cmp)
	slices.SortStableFunc(unconditional, cmp)

	ordered := make([]*Data, 0, len(datas))
	ordered = append(ordered, conditional...)
	ordered = append(ordered, unconditional...)
	for i, d := range ordered {
		d.VariantIndex = i
	}
	return ordered, nil
}

// Validate checks the records for duplicated names
func Validate(datas []*Data) error {
	seen := make(map[string]int, len(datas))
	var dups []string
	for _, d := range datas {
		seen[d.Name]++
		if seen[d.Name] == 2 {
			dups = append(dups, d.Name)
		}
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateName, strings.Join(dups, ", "))
	}
	return nil
}

// SortedHeaders returns the deduplicated and sorted set of record headers
// together with extra headers
func SortedHeaders(datas []*Data, extra ...string) []string {
	set := make(map[string]struct{})
	for _, d := range datas {
		if d.Header != "" {
			set[d.Header] = struct{}{}
		}
	}
	for _, h := range extra {
		set[h] = struct{}{}
	}
	headers := make([]string, 0, len(set))
	for h := range set {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	return headers
}
