package site

import (
	"encoding/json"
	"path"
	"strings"
	"time"

	"github.com/ancientlore/blogposts/content"
)

// Page is a Markdown file of the site.
type Page struct {
	ID          string      // identifier, like "/blog/2020-01-15-title"
	Filename    string      // path of the Markdown file in the file system
	FrontMatter FrontMatter // front matter or defaults
}

// Identifier returns the identifier of the page.
func (p Page) Identifier() string {
	return p.ID
}

// Post is a page with the date taken from its identifier.
type Post struct {
	Page
	Date time.Time
}

// MarshalJSON writes the post in the shape used by the listing.
func (p Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Identifier string   `json:"identifier"`
		Title      string   `json:"title"`
		Date       string   `json:"date"`
		Tags       []string `json:"tags,omitempty"`
	}{
		Identifier: p.ID,
		Title:      p.FrontMatter.Title,
		Date:       p.Date.Format(content.DateLayout),
		Tags:       p.FrontMatter.Tags,
	})
}

// identifierFor maps a Markdown file name to the identifier of its page.
func identifierFor(name string) string {
	name = strings.TrimSuffix(name, ".md")
	if path.Base(name) == "index" {
		name = path.Dir(name)
	}
	if name == "." {
		return "/"
	}
	return "/" + name
}
