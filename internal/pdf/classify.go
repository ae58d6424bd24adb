// Package pdf converts generated resume text into a paginated PDF document.
// The input is plain text with newline-separated lines; a per-line heuristic
// classifies each line as heading or body, and headless Chrome prints the
// resulting HTML layout. This is presentation only: there is no round trip
// back to structured data.
package pdf

import "strings"

// BlockKind distinguishes the rendered styles.
type BlockKind int

// Block kinds produced by Classify.
const (
	BlockHeading BlockKind = iota
	BlockBody
	BlockSpacer
)

// Block is one logical line of the document.
type Block struct {
	Kind BlockKind
	Text string
}

// IsHeading reports whether the block renders in the heading style.
func (b Block) IsHeading() bool { return b.Kind == BlockHeading }

// IsBody reports whether the block renders as body text.
func (b Block) IsBody() bool { return b.Kind == BlockBody }

// headingMaxLen is the length under which a trailing-colon line still counts
// as a heading rather than body text.
const headingMaxLen = 50

// Classify splits resume content into render blocks, one per line. A non-blank
// line is a heading when it is entirely upper-case, or when it ends with ':'
// and is shorter than 50 characters; blank lines become fixed vertical
// spacing.
func Classify(content string) []Block {
	var blocks []Block
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			blocks = append(blocks, Block{Kind: BlockSpacer})
			continue
		}
		if isHeading(line) {
			blocks = append(blocks, Block{Kind: BlockHeading, Text: line})
		} else {
			blocks = append(blocks, Block{Kind: BlockBody, Text: line})
		}
	}
	return blocks
}

func isHeading(line string) bool {
	if line == strings.ToUpper(line) && line != strings.ToLower(line) {
		return true
	}
	return strings.HasSuffix(line, ":") && len(line) < headingMaxLen
}
