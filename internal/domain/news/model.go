package news

import (
	"fmt"
	"time"
)

// Post is one published league announcement.
type Post struct {
	ID          string
	Title       string
	Body        string
	Author      string
	PublishedAt time.Time
}

func (p Post) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("post id is required")
	}
	if p.Title == "" {
		return fmt.Errorf("post title is required")
	}
	if p.Body == "" {
		return fmt.Errorf("post body is required")
	}
	return nil
}
