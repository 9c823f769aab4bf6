package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/blogposts/content"
	"github.com/ancientlore/blogposts/site"
	"github.com/ancientlore/blogposts/web"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
)

func main() {
	// Setup flags
	var (
		fRoot              = flag.String("root", ".", "Root of web site.")
		fAddr              = flag.String("addr", ":8080", "Address to listen on.")
		fList              = flag.Bool("list", false, "Print the posts and exit.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of the content cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long content stays cached.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
	)
	flag.Parse()
	flagenv.Parse()

	// Load the site
	fsys := os.DirFS(*fRoot)
	s, err := site.New(fsys)
	if err != nil {
		log.Printf("Cannot load site %q: %s", *fRoot, err)
		os.Exit(1)
	}

	if *fList {
		err = listPosts(os.Stdout, s)
		if err != nil {
			log.Print(err)
			os.Exit(2)
		}
		return
	}

	cfg, err := s.Config()
	if err != nil {
		log.Print(err)
		os.Exit(3)
	}

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
	cached := cachefs.New(fsys, &cachefs.Config{GroupName: "blogposts", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})

	// Setup handlers
	mux := http.NewServeMux()
	mux.Handle("/posts.json", gziphandler.GzipHandler(web.PostsHandler(cachedPosts(cached))))
	handler := web.HeaderHandler(web.ExpiresHandler(mux, time.Duration(cfg.Expires)), cfg.Headers)

	// Create HTTP server
	var srv = http.Server{
		Addr:              *fAddr,
		Handler:           handler,
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Listening for requests on %s", *fAddr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}

// cachedPosts reloads the site from fsys on every call, so new posts
// show up once the cache entries expire.
func cachedPosts(fsys fs.FS) web.PostSource {
	return web.PostSourceFunc(func() ([]site.Post, error) {
		s, err := site.New(fsys)
		if err != nil {
			return nil, err
		}
		return s.Posts()
	})
}

// listPosts writes the posts of s to w, newest first.
func listPosts(w io.Writer, s *site.Site) error {
	posts, err := s.Posts()
	if err != nil {
		return fmt.Errorf("listPosts: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, p := range posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Date.Format(content.DateLayout), p.Identifier(), p.FrontMatter.Title)
	}
	return tw.Flush()
}
