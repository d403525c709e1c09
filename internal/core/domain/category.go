package domain

import "errors"

var ErrCategoryNotFound = errors.New("category is not exists")
var ErrDuplicateTitle = errors.New("title should be unique")

// Creator is the name pair embedded in category and book list views.
type Creator struct {
	FirstName string `json:"firstname" bson:"firstname"`
	LastName  string `json:"lastname" bson:"lastname"`
}

// Category is a book category; categories form a tree via ParentID.
type Category struct {
	ID               string   `json:"id" bson:"_id,omitempty"`
	Title            string   `json:"title" bson:"title"`
	ShortDescription string   `json:"short_description,omitempty" bson:"short_description,omitempty"`
	Description      string   `json:"description,omitempty" bson:"description,omitempty"`
	ParentID         string   `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
	CreatedBy        string   `json:"created_by" bson:"created_by"`
	Creator          *Creator `json:"creator,omitempty" bson:"-"`
}
