package reddit

import (
	"encoding/json"
	"strings"
)

// ItemKind tags a moderation queue entry as a post or a comment.
type ItemKind string

const (
	KindPost    ItemKind = "post"
	KindComment ItemKind = "comment"
)

// Label returns the upper-case name shown in the queue browser.
func (k ItemKind) Label() string {
	return strings.ToUpper(string(k))
}

// QueueItem is one entry of a subreddit's moderation queue.
type QueueItem struct {
	Kind     ItemKind
	Fullname string // thing id, e.g. t3_abc123
	Author   string
	Text     string // title for posts, body for comments
}

// listing mirrors reddit's Listing envelope.
type listing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

type thing struct {
	Kind string    `json:"kind"`
	Data thingData `json:"data"`
}

type thingData struct {
	Name   string  `json:"name"`
	Author string  `json:"author"`
	Title  *string `json:"title"`
	Body   string  `json:"body"`
}

// apiResponse mirrors the api_type=json envelope returned by write endpoints.
type apiResponse struct {
	JSON struct {
		Errors [][]json.RawMessage `json:"errors"`
	} `json:"json"`
}

func (r apiResponse) errorText() string {
	if len(r.JSON.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.JSON.Errors))
	for _, e := range r.JSON.Errors {
		fields := make([]string, 0, len(e))
		for _, raw := range e {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				if s = strings.TrimSpace(s); s != "" {
					fields = append(fields, s)
				}
				continue
			}
			fields = append(fields, string(raw))
		}
		parts = append(parts, strings.Join(fields, ": "))
	}
	return strings.Join(parts, "; ")
}

// toQueueItem converts a listing child. Posts are t3 things; anything else
// is treated as a comment unless it carries a title.
func (t thing) toQueueItem() QueueItem {
	item := QueueItem{
		Kind:     KindComment,
		Fullname: t.Data.Name,
		Author:   t.Data.Author,
		Text:     t.Data.Body,
	}
	if t.Kind == "t3" || (t.Kind == "" && t.Data.Title != nil) {
		item.Kind = KindPost
		item.Text = ""
		if t.Data.Title != nil {
			item.Text = *t.Data.Title
		}
	}
	if item.Author == "" {
		item.Author = "[deleted]"
	}
	return item
}
