package types

// Book is the display metadata of a single book as rendered on a card or cover.
// TextColor is optional, consumers pick their own default when it is empty.
type Book struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Color       string  `json:"color"`
	TextColor   string  `json:"textColor,omitempty"`
	Duration    float64 `json:"duration"` // hours
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

func (b *Book) HasTextColor() bool {
	return b.TextColor != ""
}
