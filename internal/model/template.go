package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Template is a vetted contract template in the library
type Template struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description" bson:"description"`
	Category      string             `json:"category" bson:"category"` // popular, startup, employment, ip, commercial
	Body          string             `json:"body,omitempty" bson:"body,omitempty"`
	DownloadCount int                `json:"downloadCount" bson:"downloadCount"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
