package model

// BlockKind discriminates rendered document blocks
type BlockKind string

const (
	BlockHeading1       BlockKind = "heading1"
	BlockHeading2       BlockKind = "heading2"
	BlockHeading3       BlockKind = "heading3"
	BlockParagraph      BlockKind = "paragraph"
	BlockListItem       BlockKind = "list_item"
	BlockNumberedItem   BlockKind = "numbered_item"
	BlockRecommendation BlockKind = "recommendation"
	BlockWarning        BlockKind = "warning"
	BlockBlank          BlockKind = "blank"
)

// Block is one classified line of generated output. Text carries the line
// with its marker stripped; Ordinal is set for numbered items only.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Text    string    `json:"text,omitempty"`
	Ordinal int       `json:"ordinal,omitempty"`
}
