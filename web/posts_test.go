package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ancientlore/blogposts/site"
)

func testSite(t *testing.T) *site.Site {
	s, err := site.New(fstest.MapFS{
		"index.md":                  {Data: []byte("# Home")},
		"blog/2020-01-15-first.md":  {Data: []byte("+++\ntitle = \"First\"\n+++\nOne")},
		"blog/2020-02-01-second.md": {Data: []byte("+++\ntitle = \"Second\"\n+++\nTwo")},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

type listing []struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Date       string `json:"date"`
}

func TestPostsHandler(t *testing.T) {
	h := PostsHandler(testSite(t))
	var tests = []struct {
		url    string
		status int
		ids    []string
	}{
		{"/posts.json", http.StatusOK, []string{"/blog/2020-02-01-second", "/blog/2020-01-15-first"}},
		{"/posts.json?limit=1", http.StatusOK, []string{"/blog/2020-02-01-second"}},
		{"/posts.json?limit=0", http.StatusOK, []string{}},
		{"/posts.json?limit=10", http.StatusOK, []string{"/blog/2020-02-01-second", "/blog/2020-01-15-first"}},
		{"/posts.json?limit=x", http.StatusBadRequest, nil},
		{"/posts.json?limit=-1", http.StatusBadRequest, nil},
	}
	for _, test := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, test.url, nil))
		if rec.Code != test.status {
			t.Errorf("%s: expected status %d but got %d", test.url, test.status, rec.Code)
			continue
		}
		if test.status != http.StatusOK {
			continue
		}
		var l listing
		if err := json.Unmarshal(rec.Body.Bytes(), &l); err != nil {
			t.Errorf("%s: %s", test.url, err)
			continue
		}
		if len(l) != len(test.ids) {
			t.Errorf("%s: expected %v but got %s", test.url, test.ids, rec.Body.String())
			continue
		}
		for i := range l {
			if l[i].Identifier != test.ids[i] {
				t.Errorf("%s: expected %v but got %s", test.url, test.ids, rec.Body.String())
				break
			}
		}
	}
}

func TestPostsHandlerFields(t *testing.T) {
	rec := httptest.NewRecorder()
	PostsHandler(testSite(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts.json", nil))
	var l listing
	if err := json.Unmarshal(rec.Body.Bytes(), &l); err != nil {
		t.Fatal(err)
	}
	if len(l) != 2 || l[0].Title != "Second" || l[0].Date != "2020-02-01" {
		t.Errorf("Unexpected listing %s", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Unexpected content type %q", ct)
	}
}

func TestPostsHandlerMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	PostsHandler(testSite(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts.json", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d but got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestPostsHandlerError(t *testing.T) {
	src := PostSourceFunc(func() ([]site.Post, error) {
		return nil, errors.New("ParseDate \"/blog/bad\": cannot parse")
	})
	rec := httptest.NewRecorder()
	PostsHandler(src).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d but got %d", http.StatusInternalServerError, rec.Code)
	}
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error == "" {
		t.Error("Expected error message")
	}
}

func TestPostsHandlerNotLoaded(t *testing.T) {
	var s *site.Site
	rec := httptest.NewRecorder()
	PostsHandler(s).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d but got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestExpiresHandler(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := HeaderHandler(ExpiresHandler(ok, time.Hour), map[string]string{"X-Test": "yes"})
	var tests = map[string]bool{
		"/posts.json": true,
		"/":           true,
		"/robots.txt": false,
	}
	for url, expires := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		if (rec.Header().Get("Expires") != "") != expires {
			t.Errorf("%s: unexpected Expires header %q", url, rec.Header().Get("Expires"))
		}
		if rec.Header().Get("X-Test") != "yes" {
			t.Errorf("%s: missing header", url)
		}
	}
}

func TestPostsHandlerConditional(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/2020-01-15-first.md": {Data: []byte("One")},
		"blog/2020-02-01-a.md":     {Data: []byte("A")},
	}
	h := PostsHandler(PostSourceFunc(func() ([]site.Post, error) {
		s, err := site.New(fsys)
		if err != nil {
			return nil, err
		}
		return s.Posts()
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, rec.Code)
	}
	if lm := rec.Header().Get("Last-Modified"); lm != "" {
		t.Errorf("Expected no Last-Modified header but got %q", lm)
	}
	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("Expected ETag header")
	}

	// unchanged listing
	req := httptest.NewRequest(http.MethodGet, "/posts.json", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("Expected status %d but got %d", http.StatusNotModified, rec.Code)
	}

	// same-day and older posts must show up
	fsys["blog/2020-02-01-b.md"] = &fstest.MapFile{Data: []byte("B")}
	fsys["blog/2019-01-01-old.md"] = &fstest.MapFile{Data: []byte("Old")}
	for _, hdr := range []string{"If-Modified-Since", "If-None-Match"} {
		req = httptest.NewRequest(http.MethodGet, "/posts.json", nil)
		if hdr == "If-None-Match" {
			req.Header.Set(hdr, etag)
		} else {
			req.Header.Set(hdr, time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC).Format(http.TimeFormat))
		}
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected status %d but got %d", hdr, http.StatusOK, rec.Code)
			continue
		}
		var l listing
		if err := json.Unmarshal(rec.Body.Bytes(), &l); err != nil {
			t.Errorf("%s: %s", hdr, err)
			continue
		}
		if len(l) != 4 {
			t.Errorf("%s: expected 4 posts but got %s", hdr, rec.Body.String())
		}
		if rec.Header().Get("ETag") == etag {
			t.Errorf("%s: ETag did not change", hdr)
		}
	}
}
