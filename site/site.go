/*
Package site discovers the blog content of a static site held in an fs.FS and turns it
into a dated listing of posts.

Every Markdown file becomes a Page. Its identifier is its path without the ".md"
extension, rooted at "/"; an "index.md" file takes the identifier of its folder. For
example:

	File                             Identifier
	-------------------------------  -------------------------
	index.md                         /
	about.md                         /about
	blog/index.md                    /blog
	blog/2020-01-15-first-post.md    /blog/2020-01-15-first-post

Pages are collected in lexical path order. Posts are the pages under "/blog/", newest
first, each dated from the start of its file name.

Hidden files and folders (those starting with "."), the "template" folder, and the
"blog.cfg" settings file are never treated as content.

Front Matter

Markdown files may start with front matter in TOML format, delimited by "+++" lines:

	+++
	title = "My first post"
	tags = ["go", "blogging"]
	+++
	# Hello

Front matter may include:

	Name    Type              Description
	------  ----------------  -----------------------------------------
	title   string            Title of page; defaults to the file name
	date    time              Publish date (informational only)
	tags    array of strings  Tags for the post
	draft   bool              Drafts are left out of the collection
*/
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"

	"github.com/ancientlore/blogposts/content"
)

// ErrNotLoaded is returned when the collection is used before it was loaded.
var ErrNotLoaded = errors.New("site not loaded")

// Site is the collection of pages found in a file system.
type Site struct {
	fs     fs.FS
	pages  []Page
	loaded bool
	mu     sync.RWMutex
}

// New returns a Site holding the pages of fsys.
func New(fsys fs.FS) (*Site, error) {
	s := Site{
		fs: fsys,
	}
	err := s.Load()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Load (re)reads the pages from the file system.
func (s *Site) Load() error {
	if s == nil || s.fs == nil {
		return fmt.Errorf("Load: %w", ErrNotLoaded)
	}
	var pages []Page
	err := fs.WalkDir(s.fs, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name == "." {
			return nil
		}
		if isHiddenFile(name) || containsSpecialFile(name) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || path.Ext(name) != ".md" {
			return nil
		}
		p := Page{
			ID:       identifierFor(name),
			Filename: name,
			FrontMatter: FrontMatter{
				Title: strings.TrimSuffix(path.Base(name), ".md"),
			},
		}
		err = readFrontMatter(s.fs, name, &p.FrontMatter)
		if err != nil {
			if !errors.Is(err, errBadFrontMatter) {
				return err
			}
			log.Printf("Load: %s", err)
		}
		if p.FrontMatter.Draft {
			return nil
		}
		pages = append(pages, p)
		return nil
	})
	if err != nil {
		return fmt.Errorf("Load: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = pages
	s.loaded = true
	return nil
}

// Items returns a copy of all pages in lexical order.
func (s *Site) Items() ([]Page, error) {
	if s == nil {
		return nil, ErrNotLoaded
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return append([]Page(nil), s.pages...), nil
}

// Posts returns the blog posts, newest first, with their dates. A post whose
// name does not start with a date fails the whole listing.
func (s *Site) Posts() ([]Post, error) {
	pages, err := s.Items()
	if err != nil {
		return nil, fmt.Errorf("Posts: %w", err)
	}
	blog := content.BlogPosts(pages)
	posts := make([]Post, 0, len(blog))
	for _, p := range blog {
		d, err := content.ItemDate(p)
		if err != nil {
			return nil, fmt.Errorf("Posts: %s: %w", p.Filename, err)
		}
		posts = append(posts, Post{Page: p, Date: d})
	}
	return posts, nil
}
