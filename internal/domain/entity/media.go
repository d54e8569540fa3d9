package entity

import "time"

const MaxMediaSize = 10 << 20

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/webm":      true,
	"application/pdf": true,
}

func IsAllowedMediaType(mimeType string) bool {
	return allowedMediaTypes[mimeType]
}

// Media is the metadata of an uploaded file. The bytes live in the media host
// under PublicID.
type Media struct {
	ID         string    `bson:"_id" json:"id"`
	PublicID   string    `bson:"public_id" json:"publicId"`
	URL        string    `bson:"url" json:"url"`
	FileName   string    `bson:"file_name" json:"fileName"`
	MimeType   string    `bson:"mime_type" json:"mimeType"`
	FileSize   int64     `bson:"file_size" json:"fileSize"`
	UploadedBy string    `bson:"uploaded_by" json:"uploadedBy"`
	IsDeleted  bool      `bson:"is_deleted" json:"-"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// UploadedMedia is what the media host returns for a stored file.
type UploadedMedia struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
