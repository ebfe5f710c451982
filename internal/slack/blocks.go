package slack

// Block and text object types used in messages
const (
	BlockHeader  = "header"
	BlockDivider = "divider"
	BlockSection = "section"

	TextPlain    = "plain_text"
	TextMarkdown = "mrkdwn"
)

// Message is the webhook request body
type Message struct {
	Blocks []Block `json:"blocks"`
	// Text is shown by clients that cannot render blocks, and in notifications
	Text string `json:"text"`
}

// Block is one layout block
type Block struct {
	Type string      `json:"type"`
	Text *TextObject `json:"text,omitempty"`
}

// TextObject is the text of a header or section block
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HeaderBlock returns a header block with plain text
func HeaderBlock(text string) Block {
	return Block{Type: BlockHeader, Text: &TextObject{Type: TextPlain, Text: text}}
}

// DividerBlock returns a divider
func DividerBlock() Block {
	return Block{Type: BlockDivider}
}

// SectionBlock returns a section block with mrkdwn text
func SectionBlock(markdown string) Block {
	return Block{Type: BlockSection, Text: &TextObject{Type: TextMarkdown, Text: markdown}}
}
