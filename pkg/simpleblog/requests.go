package simpleblog

// Request DTOs

// CreatePostRequest contains the payload for creating a new post. Alt,
// MetaTitle and MetaDescription are optional and default from Title and
// Description during validation.
type CreatePostRequest struct {
	Title           string
	Description     string
	Content         string
	ImageURL        string
	Alt             string
	MetaTitle       string
	MetaDescription string
}

// UpdatePostRequest is a partial patch for an existing post. Nil fields are
// left untouched; supplied fields are validated against the same constraints
// as on create.
type UpdatePostRequest struct {
	Title           *string
	Description     *string
	Content         *string
	ImageURL        *string
	Alt             *string
	MetaTitle       *string
	MetaDescription *string
}

// IsEmpty reports whether the patch supplies no fields at all.
func (r UpdatePostRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Content == nil &&
		r.ImageURL == nil && r.Alt == nil && r.MetaTitle == nil &&
		r.MetaDescription == nil
}
