// Package importer parses Netscape bookmark HTML into start page
// bookmarks. The folder hierarchy flattens into labels: every
// enclosing folder name becomes a label on the bookmark.
package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/calbers/startpage/internal/editor"
	"github.com/calbers/startpage/internal/model"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns the
// contained bookmarks in document order.
func ParseHTMLBookmarks(r io.Reader) ([]model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var bookmarks []model.Bookmark

	// Stack of enclosing folder names; a pending name is pushed when
	// its DL opens.
	var folderStack []string
	var pendingFolder string

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				if name := getTextContent(n); name != "" {
					pendingFolder = name
				}
				return // don't recurse into H3 text again

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}

				name := getTextContent(n)
				if name == "" {
					name = href
				}

				labels := append([]string{}, folderStack...)
				if tags := getAttr(n, "tags"); tags != "" {
					labels = append(labels, editor.ParseLabels(tags)...)
				}

				draft := editor.Draft{
					Name:    name,
					URL:     href,
					Favicon: getAttr(n, "icon_uri"),
					Labels:  strings.Join(labels, ","),
				}
				b, err := editor.Submit(draft)
				if err != nil {
					// Skip records that don't validate (e.g. place:
					// pseudo-URLs some browsers export)
					return
				}
				bookmarks = append(bookmarks, b)
				return

			case "dl":
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					for c := n.FirstChild; c != nil; c = c.NextSibling {
						parse(c)
					}
					folderStack = folderStack[:len(folderStack)-1]
					return
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return bookmarks, nil
}

// getTextContent returns the concatenated text of a node's children.
func getTextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

// getAttr returns the value of the named attribute, or "".
func getAttr(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, name) {
			return attr.Val
		}
	}
	return ""
}
