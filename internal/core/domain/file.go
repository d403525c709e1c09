package domain

import "errors"

var ErrFileNotFound = errors.New("file is not exists")
var ErrFileMissing = errors.New("file is not uploaded")

// StoredFile is the metadata record for an upload kept on local disk.
// Filename is the name under the upload directory; Original is the name the
// client supplied.
type StoredFile struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Filename  string `json:"filename" bson:"filename"`
	Original  string `json:"original" bson:"original"`
	Size      int64  `json:"size" bson:"size"`
	Mimetype  string `json:"mimetype" bson:"mimetype"`
	CreatedBy string `json:"created_by" bson:"created_by"`
}
