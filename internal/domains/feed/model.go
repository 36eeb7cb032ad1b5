package feed

// Record is one post-like entry from the remote JSON feed. The feed is
// read-only content refreshed only at process restart, distinct from
// the database-backed content store.
type Record struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
}
