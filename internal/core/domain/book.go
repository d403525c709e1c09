package domain

import "errors"

var ErrBookNotFound = errors.New("such book is not exists")
var ErrMissingTitle = errors.New("title is required")

// Book is the central catalog entity. Every book carries exactly one
// uploaded file (the scan/e-book) and optionally a category and authors.
type Book struct {
	ID               string   `json:"id" bson:"_id,omitempty"`
	Title            string   `json:"title" bson:"title"`
	ShortDescription string   `json:"short_description,omitempty" bson:"short_description,omitempty"`
	City             string   `json:"city,omitempty" bson:"city,omitempty"`
	Year             int      `json:"year,omitempty" bson:"year,omitempty"`
	PublishingHouse  string   `json:"publishing_house,omitempty" bson:"publishing_house,omitempty"`
	Edition          string   `json:"edition,omitempty" bson:"edition,omitempty"`
	Series           string   `json:"series,omitempty" bson:"series,omitempty"`
	CategoryID       string   `json:"category_id,omitempty" bson:"category_id,omitempty"`
	AuthorIDs        []string `json:"author_ids,omitempty" bson:"author_ids,omitempty"`
	FileID           string   `json:"file_id,omitempty" bson:"file_id,omitempty"`
	CreatedBy        string   `json:"created_by" bson:"created_by"`

	// Joined views populated by the repository for list responses.
	CategoryTitle string   `json:"category_title,omitempty" bson:"-"`
	Filename      string   `json:"filename,omitempty" bson:"-"`
	Authors       []Author `json:"authors,omitempty" bson:"-"`
}
