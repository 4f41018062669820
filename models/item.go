package models

// Item is a catalog entry as served by the v1 API.
type Item struct {
	// ID is the numeric catalog identifier assigned by the database.
	ID int64 `json:"id"`

	// Name is the display name of the item. Never empty.
	Name string `json:"name"`

	// Description is optional free text; nil renders as JSON null and is
	// omitted from XML output.
	Description *string `json:"description"`

	// ImageURL is filled in by the HTTP layer from the request host and is
	// not persisted.
	ImageURL string `json:"imageUrl,omitempty"`

	// StaffReview is attached only when a single item is served.
	StaffReview *string `json:"staffReview,omitempty"`
}

// ItemDetail is the v2 representation of an item. It keeps every v1 field
// except ImageURL, which is replaced by separate thumbnail and full image links.
type ItemDetail struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Description       *string `json:"description"`
	ThumbnailImageURL *string `json:"thumbnailImageUrl,omitempty"`
	FullImageURL      *string `json:"fullImageUrl,omitempty"`
	StaffReview       *string `json:"staffReview,omitempty"`
}

// NewItemDetail copies the persisted fields of item into a v2 detail record.
func NewItemDetail(item Item) ItemDetail {
	return ItemDetail{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
	}
}

// ItemDTO is the request body accepted when creating or replacing an item.
//
// Pointer fields let the validator tell an absent field from an empty one.
type ItemDTO struct {
	Name        *string `json:"name" xml:"name" validate:"required,min=1"`
	Description *string `json:"description" xml:"description"`
}

// ItemUpsert is the normalized item payload handed to the service layer.
type ItemUpsert struct {
	Name        string
	Description *string
}
