package news

// Article is the normalized news item shape.
type Article struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	Description string `json:"description,omitempty"`
	Published   string `json:"publishedAt"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Category    string `json:"category,omitempty"`
	Link        string `json:"externalUrl"`
}
