package render

import (
	"bytes"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/3-lines-studio/prerender/internal/core"
)

// ExtractLinks returns the same-origin paths referenced by <a href> on the
// page at base, in document order, without duplicates.
func ExtractLinks(base string, body []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var links []string
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A && !hasAttr(n, "download") && !isExternalTarget(n) {
			if href, ok := attr(n, "href"); ok {
				if p, ok := core.ResolveLink(base, href); ok && !seen[p] {
					seen[p] = true
					links = append(links, p)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attr(n, key)
	return ok
}

func isExternalTarget(n *html.Node) bool {
	rel, _ := attr(n, "rel")
	return rel == "external"
}
