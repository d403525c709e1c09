package domain

import "errors"

var ErrAuthorNotFound = errors.New("such author does not exists")

// BookRef is the lightweight book reference embedded in author views.
type BookRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Author is a book author. Books are linked many-to-many from the book side.
type Author struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FirstName string    `json:"firstname" bson:"firstname"`
	LastName  string    `json:"lastname" bson:"lastname"`
	Books     []BookRef `json:"books,omitempty" bson:"-"`
}
