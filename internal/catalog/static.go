package catalog

import (
	"context"
	"sync"
	"time"
)

// staticPages lists the fixed informational pages.
var staticPages = []StaticPage{
	{Path: "/", Title: "Home"},
	{Path: "/about", Title: "About Us", LastMod: "2025-03-10"},
	{Path: "/contact", Title: "Contact", LastMod: "2025-03-10"},
	{Path: "/privacy", Title: "Privacy Policy", LastMod: "2025-01-05"},
	{Path: "/terms", Title: "Terms of Service", LastMod: "2025-01-05"},
}

// Static is the in-memory Provider. Cities and services come from the
// compiled tables; posts are loaded lazily from the content directory and
// cached for the TTL, mirroring how a remote CMS client would behave.
type Static struct {
	contentDir string

	mu          sync.Mutex
	posts       []Post
	postsLoaded time.Time
	ttl         time.Duration
}

// NewStatic builds a provider reading blog posts from contentDir/blog.
func NewStatic(contentDir string) *Static {
	return &Static{contentDir: contentDir, ttl: 5 * time.Minute}
}

// Cities returns the destination table.
func (s *Static) Cities(ctx context.Context) ([]City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]City, len(cities))
	copy(out, cities)
	return out, nil
}

// Services returns the service table.
func (s *Static) Services(ctx context.Context) ([]Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Service, len(services))
	copy(out, services)
	return out, nil
}

// Posts returns published blog posts, newest first.
func (s *Static) Posts(ctx context.Context) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.postsLoaded.IsZero() && time.Since(s.postsLoaded) < s.ttl {
		return s.posts, nil
	}
	posts, err := loadPosts(s.contentDir + "/blog")
	if err != nil {
		return nil, err
	}
	s.posts = posts
	s.postsLoaded = time.Now()
	return posts, nil
}

// PostBySlug looks up one published post.
func (s *Static) PostBySlug(ctx context.Context, slug string) (Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// StaticPages returns the fixed page list.
func (s *Static) StaticPages(ctx context.Context) ([]StaticPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]StaticPage, len(staticPages))
	copy(out, staticPages)
	return out, nil
}

// DefaultStaticPages exposes the fixed page list for callers that need a
// last-resort sitemap when the provider fails entirely.
func DefaultStaticPages() []StaticPage {
	out := make([]StaticPage, len(staticPages))
	copy(out, staticPages)
	return out
}
