package models

// PostStatus is the publication state of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

// Post is a content record as returned by the content API.
// Author, Category and Tags are denormalized snapshots the API attaches on
// reads; they are absent on some list endpoints, so keep them optional.
type Post struct {
	ID         int           `json:"id"`
	Title      string        `json:"title"`
	Slug       string        `json:"slug"`
	Excerpt    string        `json:"excerpt"`
	Content    string        `json:"content"`
	Thumbnail  string        `json:"thumbnail"`
	Status     PostStatus    `json:"status"`
	Featured   bool          `json:"featured"`
	Views      int64         `json:"views"`
	UserID     int           `json:"user_id"`
	CategoryID int           `json:"category_id"`
	CreatedAt  string        `json:"createdAt"`
	UpdatedAt  string        `json:"updatedAt"`
	Author     *PostAuthor   `json:"author,omitempty"`
	Category   *PostCategory `json:"category,omitempty"`
	Tags       []Tag         `json:"tags,omitempty"`
}

// PostAuthor is the author snapshot embedded in a post.
type PostAuthor struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// PostCategory is the category snapshot embedded in a post.
type PostCategory struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

// CreatePostParams is the payload for creating a post.
type CreatePostParams struct {
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    string     `json:"excerpt"`
	Content    string     `json:"content"`
	UserID     int        `json:"user_id"`
	CategoryID int        `json:"category_id"`
	Status     PostStatus `json:"status,omitempty"`
	Featured   *bool      `json:"featured,omitempty"`
	Thumbnail  string     `json:"thumbnail,omitempty"`
	Tags       []int      `json:"tags,omitempty"`
}

// UpdatePostParams is the partial payload for updating a post. Nil and
// zero-valued optional fields are omitted from the request body.
type UpdatePostParams struct {
	Title      *string     `json:"title,omitempty"`
	Slug       *string     `json:"slug,omitempty"`
	Excerpt    *string     `json:"excerpt,omitempty"`
	Content    *string     `json:"content,omitempty"`
	UserID     *int        `json:"user_id,omitempty"`
	CategoryID *int        `json:"category_id,omitempty"`
	Status     *PostStatus `json:"status,omitempty"`
	Featured   *bool       `json:"featured,omitempty"`
	Thumbnail  *string     `json:"thumbnail,omitempty"`
	Tags       []int       `json:"tags,omitempty"`
}
