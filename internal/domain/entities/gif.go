package entities

// Gif is the daily pick served by the gif-of-the-day endpoint. It is never
// persisted; the pick is recomputed from the calendar date on every request.
type Gif struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
}
