package entity

import "time"

// BrandingID is the key of the single branding document.
const BrandingID = "site"

type Branding struct {
	ID             string    `bson:"_id" json:"-"`
	SiteName       string    `bson:"site_name" json:"siteName"`
	Tagline        string    `bson:"tagline,omitempty" json:"tagline,omitempty"`
	LogoURL        string    `bson:"logo_url,omitempty" json:"logoUrl,omitempty"`
	LogoPublicID   string    `bson:"logo_public_id,omitempty" json:"logoPublicId,omitempty"`
	PrimaryColor   string    `bson:"primary_color" json:"primaryColor"`
	SecondaryColor string    `bson:"secondary_color" json:"secondaryColor"`
	ContactEmail   string    `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	UpdatedBy      string    `bson:"updated_by,omitempty" json:"updatedBy,omitempty"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// DefaultBranding is served until an admin saves branding for the first time.
func DefaultBranding() *Branding {
	return &Branding{
		ID:             BrandingID,
		SiteName:       "NutriCoach",
		Tagline:        "Personal nutrition coaching",
		PrimaryColor:   "#2E7D32",
		SecondaryColor: "#FFB300",
	}
}
