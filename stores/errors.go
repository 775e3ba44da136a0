package stores

import "errors"

// Sentinel errors forming the API error taxonomy. Controllers map these onto
// HTTP statuses: validation and conflict errors become 400, ErrNotFound 404.
var (
	ErrMissingUserFields   = errors.New("please enter all fields")
	ErrEmailTaken          = errors.New("user already exists")
	ErrMissingPostFields   = errors.New("please add a title and content")
	ErrTitleTaken          = errors.New("post title already exists")
	ErrMissingCategoryName = errors.New("please add a category name")
	ErrCategoryTaken       = errors.New("category already exists")
	ErrDescriptionTooLong  = errors.New("description must be 100 characters or less")
	ErrNotFound            = errors.New("record not found")
)
