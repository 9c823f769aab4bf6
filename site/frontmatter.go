package site

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FrontMatter holds data scraped from a Markdown page.
type FrontMatter struct {
	Title string    `toml:"title"` // Title of this page
	Date  time.Time `toml:"date"`  // Date the page was written
	Tags  []string  `toml:"tags"`  // Tags to assign to this page
	Draft bool      `toml:"draft"` // Drafts are not published
}

// errBadFrontMatter marks front matter that could not be parsed.
var errBadFrontMatter = errors.New("bad front matter")

// fmRegexp is the regular expression used to split out front matter.
var fmRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)

// extractFrontMatter splits the front matter and Markdown content.
func extractFrontMatter(x []byte) (fm, r []byte) {
	subs := fmRegexp.Split(string(x), 3)
	if len(subs) != 3 {
		return nil, x
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, x
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2]))
}

// readFrontMatter reads the named file and unmarshals its front matter into fm.
// Fields missing from the front matter keep their values.
func readFrontMatter(fsys fs.FS, name string, fm *FrontMatter) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("readFrontMatter: %w", err)
	}
	fmb, _ := extractFrontMatter(b)
	if len(fmb) == 0 {
		return nil
	}
	var parsed FrontMatter
	err = toml.Unmarshal(fmb, &parsed)
	if err != nil {
		return fmt.Errorf("readFrontMatter %s: %w: %s", name, errBadFrontMatter, err)
	}
	if parsed.Title != "" {
		fm.Title = parsed.Title
	}
	fm.Date = parsed.Date
	fm.Tags = parsed.Tags
	fm.Draft = parsed.Draft
	return nil
}
