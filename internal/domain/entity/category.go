package entity

import "time"

// Category groups content. Arabic fields are machine translated and fall
// back to the source text when translation is unavailable.
type Category struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	NameAr        string    `bson:"name_ar" json:"nameAr"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionAr string    `bson:"description_ar,omitempty" json:"descriptionAr,omitempty"`
	Slug          string    `bson:"slug" json:"slug"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
