/*
Package web serves the post listing of a site over HTTP.

The listing is a JSON array, newest post first:

	[
		{"identifier": "/blog/2020-02-01-second", "title": "Second", "date": "2020-02-01"},
		{"identifier": "/blog/2020-01-15-first", "title": "First", "date": "2020-01-15", "tags": ["go"]}
	]

Use the "limit" query parameter to return only the newest N posts.
*/
package web

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ancientlore/blogposts/site"
)

// PostSource provides the posts to list.
type PostSource interface {
	Posts() ([]site.Post, error)
}

// PostSourceFunc adapts a function to a PostSource.
type PostSourceFunc func() ([]site.Post, error)

// Posts calls f.
func (f PostSourceFunc) Posts() ([]site.Post, error) {
	return f()
}

// PostsHandler returns an http.Handler that writes the posts of src as JSON.
func PostsHandler(src PostSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		limit := -1
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				writeError(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}
		posts, err := src.Posts()
		if err != nil {
			log.Printf("PostsHandler: %s", err)
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if posts == nil {
			posts = []site.Post{}
		}
		if limit >= 0 && limit < len(posts) {
			posts = posts[:limit]
		}
		var out bytes.Buffer
		err = json.NewEncoder(&out).Encode(posts)
		if err != nil {
			log.Printf("PostsHandler: %s", err)
			writeError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		// No Last-Modified; the ETag covers the encoded listing.
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("ETag", fmt.Sprintf(`"%x"`, sha256.Sum256(out.Bytes())))
		http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(out.Bytes()))
	})
}
