package github

// Notification is one entry of GET /notifications. Only the fields gh-notifier
// reads are decoded.
type Notification struct {
	ID        string  `json:"id"`
	UpdatedAt string  `json:"updated_at"`
	Reason    string  `json:"reason"`
	Subject   Subject `json:"subject"`
}

// Subject is the thread a notification refers to.
type Subject struct {
	Title string `json:"title"`
	// URL is the API URL of the issue or pull request. It is null for some
	// subjects (e.g., check suites, releases).
	URL *string `json:"url"`
	// Type is the subject type (Issue, PullRequest, Release, ...).
	Type string `json:"type,omitempty"`
}

// Identifier returns the deduplication key: id followed by updated_at.
// A thread that is updated gets a new identifier and is announced again.
func (n Notification) Identifier() string {
	return n.ID + n.UpdatedAt
}

// SubjectURL returns the subject API URL, or "" when absent.
func (n Notification) SubjectURL() string {
	if n.Subject.URL == nil {
		return ""
	}
	return *n.Subject.URL
}
