package repository

import "errors"

// Collection names in the document store.
const (
	CollectionUser       = "user"
	CollectionDepartment = "department"
	CollectionTask       = "task"
)

// ErrMalformedID reports an id string that is not a valid ObjectID hex.
var ErrMalformedID = errors.New("malformed object id")
