// Package render converts generated document text into typed display
// blocks, one block per input line. The classification is stateless and
// order preserving so the same text always renders identically.
package render

import (
	"strings"

	"lexdraft/internal/model"
)

const (
	recommendationMarker = "**Recommendation**:"
	warningGlyph         = "⚠️"
)

// Blocks classifies every line of raw text into exactly one block,
// preserving input order 1:1. Malformed markers (e.g. "##text" with no
// space) fall through to paragraphs, never an error.
func Blocks(raw string) []model.Block {
	lines := strings.Split(raw, "\n")
	out := make([]model.Block, 0, len(lines))
	for _, line := range lines {
		out = append(out, classify(strings.TrimSuffix(line, "\r")))
	}
	return out
}

func classify(line string) model.Block {
	switch {
	case strings.HasPrefix(line, "# "):
		return model.Block{Kind: model.BlockHeading1, Text: strings.TrimPrefix(line, "# ")}
	case strings.HasPrefix(line, "## "):
		return model.Block{Kind: model.BlockHeading2, Text: strings.TrimPrefix(line, "## ")}
	case strings.HasPrefix(line, "### "):
		return model.Block{Kind: model.BlockHeading3, Text: strings.TrimPrefix(line, "### ")}
	case strings.Contains(line, recommendationMarker):
		_, after, _ := strings.Cut(line, recommendationMarker)
		return model.Block{Kind: model.BlockRecommendation, Text: strings.TrimSpace(after)}
	case strings.Contains(line, warningGlyph):
		return model.Block{Kind: model.BlockWarning, Text: line}
	case strings.HasPrefix(line, "- "):
		return model.Block{Kind: model.BlockListItem, Text: strings.TrimPrefix(line, "- ")}
	case isNumberedItem(line):
		return model.Block{
			Kind:    model.BlockNumberedItem,
			Ordinal: int(line[0] - '0'),
			Text:    line[3:],
		}
	case strings.TrimSpace(line) == "":
		return model.Block{Kind: model.BlockBlank}
	default:
		return model.Block{Kind: model.BlockParagraph, Text: line}
	}
}

// isNumberedItem matches the small fixed marker set "1. " through "3. "
func isNumberedItem(line string) bool {
	if len(line) < 3 {
		return false
	}
	return line[0] >= '1' && line[0] <= '3' && line[1] == '.' && line[2] == ' '
}
