package models

// Tag is a flat label attached to posts.
type Tag struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type CreateTagParams struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateTagParams struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}
