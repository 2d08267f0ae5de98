package models

// Product is an affiliate promotion rendered in the product rows and grids.
// Active defaults to true on the API side; inactive products stay visible in
// the admin panel only.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	AffiliateURL  string   `json:"affiliate_url"`
	Image         string   `json:"image,omitempty"`
	Active        *bool    `json:"active,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// IsActive treats a missing active flag as active, matching the public
// products filter of the content API.
func (p Product) IsActive() bool {
	return p.Active == nil || *p.Active
}

type CreateProductParams struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	AffiliateURL  string   `json:"affiliate_url"`
	Image         string   `json:"image,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
}

type UpdateProductParams struct {
	Name          *string  `json:"name,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	AffiliateURL  *string  `json:"affiliate_url,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Active        *bool    `json:"active,omitempty"`
}
