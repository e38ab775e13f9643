package engine

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// urlPattern is the permissive scheme://rest shape used for locations.
	urlPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://[^\s<>"']+`)

	// textURLPattern finds plain http(s) URLs in decoded text. Unicode spaces
	// such as a decoded &nbsp; end a URL.
	textURLPattern = regexp.MustCompile(`(?i)https?://[^\s\p{Z}<>"']+`)

	// angleURLPattern matches <https://...> written directly into the body,
	// which a tokenizer would otherwise read as a tag.
	angleURLPattern = regexp.MustCompile(`(?i)<(https?://[^\s<>]+)>`)
)

// ExtractLinks returns every link in a possibly-HTML text: anchor hrefs,
// <https://...> wrapped URLs and plain URLs, in document order without
// duplicates. Attributes of other tags and style or script content are ignored.
func ExtractLinks(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	links := make([]string, 0)
	add := func(link string) {
		if link == "" || seen[link] {
			return
		}
		seen[link] = true
		links = append(links, link)
	}

	z := html.NewTokenizer(strings.NewReader(angleURLPattern.ReplaceAllString(text, "$1")))
	skip := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return links
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.Style, atom.Script:
				skip = true
			case atom.A:
				for _, attr := range tok.Attr {
					if attr.Key == "href" && strings.Contains(attr.Val, "://") {
						add(strings.TrimSpace(attr.Val))
					}
				}
			}
		case html.EndTagToken:
			if a := z.Token().DataAtom; a == atom.Style || a == atom.Script {
				skip = false
			}
		case html.TextToken:
			if skip {
				continue
			}
			for _, m := range textURLPattern.FindAllString(string(z.Text()), -1) {
				add(trimTrailingPunctuation(m))
			}
		}
	}
}

// firstLink returns the first link ExtractLinks finds in text, or "".
func firstLink(text string) string {
	if links := ExtractLinks(text); len(links) > 0 {
		return links[0]
	}
	return ""
}

func trimTrailingPunctuation(link string) string {
	return strings.TrimRight(link, ".,;:!?)]}")
}
