package models

import (
	"fmt"
	"time"
)

// Issue represents the tracked GitHub issue with its conversation
type Issue struct {
	Org      string    `json:"org"`
	Repo     string    `json:"repo"`
	Number   int       `json:"number"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	State    string    `json:"state"`
	URL      string    `json:"url"`
	Comments []Comment `json:"comments,omitempty"`
}

// Comment is a single issue comment
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// FullRepo returns the full repository name (org/repo)
func (i *Issue) FullRepo() string {
	return fmt.Sprintf("%s/%s", i.Org, i.Repo)
}

// LastComments returns at most n trailing comments, oldest first
func (i *Issue) LastComments(n int) []Comment {
	if n <= 0 {
		return nil
	}
	if len(i.Comments) <= n {
		return i.Comments
	}
	return i.Comments[len(i.Comments)-n:]
}
