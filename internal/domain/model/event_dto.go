package model

// CalendarEventDTO feeds the calendar view. Titles are truncated and carry a
// check marker when complete; color encodes the classification.
type CalendarEventDTO struct {
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}

// APIEventDTO is the JSON feed shape. Full title, no color; the two event
// projections are intentionally distinct.
type APIEventDTO struct {
	Title  string `json:"title"`
	Start  string `json:"start"`
	AllDay bool   `json:"allDay"`
}
