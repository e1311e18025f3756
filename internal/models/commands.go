package models

// CreateBookCommand is the validated input for creating a book, from either
// the web form (owner taken from the session) or the public API (owner
// declared by the caller).
type CreateBookCommand struct {
	Title  string  `json:"title" validate:"required,min=1,max=200"`
	Author string  `json:"author" validate:"required,min=1,max=100"`
	Year   *int    `json:"year" validate:"omitempty,gte=0,lte=3000"`
	Tags   TagList `json:"tags"`
	Owner  string  `json:"owner" validate:"required"`
}

func (c CreateBookCommand) Book() Book {
	tags := []string(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return Book{
		Title:  c.Title,
		Author: c.Author,
		Year:   c.Year,
		Tags:   tags,
		Owner:  c.Owner,
	}
}

// UpdateBookCommand is a partial update; absent fields keep their value.
type UpdateBookCommand struct {
	Title  *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Author *string  `json:"author" validate:"omitempty,min=1,max=100"`
	Year   *int     `json:"year" validate:"omitempty,gte=0,lte=3000"`
	Tags   *TagList `json:"tags"`
}

func (c UpdateBookCommand) Patch() BookPatch {
	p := BookPatch{Title: c.Title, Author: c.Author, Year: c.Year}
	if c.Tags != nil {
		tags := []string(*c.Tags)
		if tags == nil {
			tags = []string{}
		}
		p.Tags = &tags
	}
	return p
}
