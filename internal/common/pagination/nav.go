package pagination

import "strconv"

// TokenKind identifies the role of a navigation token.
type TokenKind int

const (
	// TokenPrev jumps to the previous navigation window.
	TokenPrev TokenKind = iota
	// TokenPage links to a single page.
	TokenPage
	// TokenNext jumps to the next navigation window.
	TokenNext
)

// Rendered forms of the window markers.
const (
	PrevMarker = "<"
	NextMarker = ">"
)

// NavToken is one entry of the pager bar. Page is set only for TokenPage.
type NavToken struct {
	Kind TokenKind
	Page int
}

// PrevToken returns the previous-window marker.
func PrevToken() NavToken { return NavToken{Kind: TokenPrev} }

// NextToken returns the next-window marker.
func NextToken() NavToken { return NavToken{Kind: TokenNext} }

// PageToken returns a link to page n.
func PageToken(n int) NavToken { return NavToken{Kind: TokenPage, Page: n} }

// String renders the token as "<", ">" or the decimal page number.
func (t NavToken) String() string {
	switch t.Kind {
	case TokenPrev:
		return PrevMarker
	case TokenNext:
		return NextMarker
	default:
		return strconv.Itoa(t.Page)
	}
}

// MarshalText lets tokens be encoded directly as JSON strings.
func (t NavToken) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// RenderTokens converts tokens to their display strings, preserving order.
func RenderTokens(tokens []NavToken) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.String())
	}
	return out
}

// buildTokens emits Prev when the window does not start at page 1, every page in
// [start, end] ascending, and Next when the window stops short of totalPages.
func buildTokens(start, end, totalPages int) []NavToken {
	tokens := make([]NavToken, 0, end-start+3)
	if start != 1 {
		tokens = append(tokens, PrevToken())
	}
	for n := start; n <= end; n++ {
		tokens = append(tokens, PageToken(n))
	}
	if end != totalPages {
		tokens = append(tokens, NextToken())
	}
	return tokens
}
