package content

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the layout of the date at the start of a post name.
const DateLayout = "2006-01-02"

// DateStamp returns the part of identifier expected to hold the date: the first
// ten bytes of the last path segment, or the whole segment if it is shorter.
// Trailing slashes are ignored, so "/blog/2020-01-15-title/" and
// "/blog/2020-01-15-title" give the same result.
func DateStamp(identifier string) string {
	identifier = strings.TrimRight(identifier, "/")
	seg := identifier[strings.LastIndex(identifier, "/")+1:]
	if len(seg) > len(DateLayout) {
		seg = seg[:len(DateLayout)]
	}
	return seg
}

// ParseDate parses the date stamp of identifier. The result is midnight UTC.
func ParseDate(identifier string) (time.Time, error) {
	t, err := time.Parse(DateLayout, DateStamp(identifier))
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseDate %q: %w", identifier, err)
	}
	return t, nil
}

// ItemDate returns the date encoded in the identifier of item.
func ItemDate(item Item) (time.Time, error) {
	return ParseDate(item.Identifier())
}
