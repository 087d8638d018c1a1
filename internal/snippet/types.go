package snippet

// UploadRequest is the payload for POST /api/snippets.
type UploadRequest struct {
	Filename    string `json:"filename"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
	Public      bool   `json:"public"`
}

// Snippet describes a hosted snippet as returned by the service.
type Snippet struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	RawURL      string `json:"raw_url,omitempty"`
	Filename    string `json:"filename"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content"`
}
