package aur

import (
	"strings"

	apperrors "github.com/matzehuels/aurorder/pkg/errors"
	"github.com/matzehuels/aurorder/pkg/integrations"
)

const argPrefix = "&arg[]="

// BaseQuery returns the info query URL for endpoint without any arguments.
func BaseQuery(endpoint string) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "v=5&type=info"
}

// QueryURL builds the request URL asking for names.
func QueryURL(base string, names []string) string {
	var b strings.Builder
	b.Grow(len(base) + len(names)*16)
	b.WriteString(base)
	for _, name := range names {
		b.WriteString(argPrefix)
		b.WriteString(integrations.URLEncode(name))
	}
	return b.String()
}

// argLen is the number of characters name adds to a request URL.
func argLen(name string) int {
	return len(argPrefix) + len(integrations.URLEncode(name))
}

// Pack splits names into batches so that QueryURL(base, batch) is at most
// maxLen characters long for every batch. Packing is greedy and keeps the
// input order: names are added to the current batch until the next one
// would not fit, then a new batch is started.
//
// A name that does not fit into a request on its own yields a
// QUERY_TOO_LONG error.
func Pack(base string, names []string, maxLen int) ([][]string, error) {
	var (
		batches [][]string
		cur     []string
		curLen  = len(base)
	)
	for _, name := range names {
		n := argLen(name)
		if len(base)+n > maxLen {
			return nil, apperrors.New(apperrors.ErrCodeQueryTooLong,
				"package name %q needs %d characters, request limit is %d", name, len(base)+n, maxLen)
		}
		if curLen+n > maxLen {
			batches = append(batches, cur)
			cur, curLen = nil, len(base)
		}
		cur = append(cur, name)
		curLen += n
	}
	if len(cur) > 0 {
		batches = append(batches, cur)
	}
	return batches, nil
}
