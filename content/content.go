/*
Package content holds the helpers a static site uses to turn its collection of content
items into a blog listing.

Items are anything with an identifier, which is a slash-delimited path like
"/blog/2020-01-15-my-first-post". The collection is always passed in explicitly; nothing
in this package reads global state, performs I/O, or logs.

Selecting Posts

BlogPosts keeps the items whose identifier starts with "/blog/" and reverses them. Hosts
usually yield items in ascending path order, so when post names start with their date
the result is newest first:

	posts := content.BlogPosts(items)

Select does the same for any prefix.

Post Dates

The date of a post is encoded in the first ten characters of the last segment of its
identifier, in "YYYY-MM-DD" form:

	d, err := content.ItemDate(content.Identifier("/blog/2020-01-15-title"))

Malformed names are reported as errors that wrap the underlying *time.ParseError.
*/
package content

// Item is a content record supplied by the host. Only its identifier is read.
type Item interface {
	Identifier() string
}

// Identifier is an Item made from a bare identifier string.
type Identifier string

// Identifier returns the identifier itself.
func (id Identifier) Identifier() string {
	return string(id)
}
