package models

// Card is the list-view summary of one waterfall.
type Card struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Photo   string `json:"photo,omitempty"`
	Height  string `json:"height,omitempty"`
	Width   string `json:"width,omitempty"`
	Visited bool   `json:"visited"`
}

// CardsResponse is the list endpoint payload.
type CardsResponse struct {
	Data   []Card `json:"data"`
	Total  int    `json:"total"`
	Notice string `json:"notice,omitempty"` // non-blocking storage notice
}
