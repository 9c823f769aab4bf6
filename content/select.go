package content

import "strings"

// BlogPrefix is the identifier prefix of blog posts.
const BlogPrefix = "/blog/"

// BlogPosts returns the items under BlogPrefix in reverse order.
func BlogPosts[T Item](items []T) []T {
	return Select(items, BlogPrefix)
}

// Select returns a new slice with the items whose identifier starts with prefix,
// in reverse order. The input slice is not modified.
func Select[T Item](items []T, prefix string) []T {
	r := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		if strings.HasPrefix(items[i].Identifier(), prefix) {
			r = append(r, items[i])
		}
	}
	return r
}
