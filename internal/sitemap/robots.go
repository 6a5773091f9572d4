package sitemap

import "strings"

// Robots renders robots.txt: open by default, explicit blocks for paths
// crawlers have no business in, and an absolute sitemap pointer.
func (g *Generator) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, p := range []string{"/admin/", "/api/", "/internal/", "/_dev/"} {
		b.WriteString("Disallow: " + p + "\n")
	}
	for _, p := range []string{"/services/", "/blog/"} {
		b.WriteString("Allow: " + p + "\n")
	}
	b.WriteString("Crawl-delay: 1\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + g.cfg.AbsoluteURL("/sitemap.xml") + "\n")
	return b.String()
}
