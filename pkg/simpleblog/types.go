package simpleblog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field length limits, matching the persisted schema.
const (
	MaxTitleLength           = 100
	MaxDescriptionLength     = 200
	MaxMetaTitleLength       = 60
	MaxMetaDescriptionLength = 160
)

// Post is the blog article entity. The repository assigns ID, CreatedAt and
// UpdatedAt on create and refreshes UpdatedAt on every update; Slug is always
// derived from the most recent Title.
type Post struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Content         string             `bson:"content" json:"content"`
	ImageURL        string             `bson:"imageUrl" json:"imageUrl"`
	Alt             string             `bson:"alt" json:"alt"`
	MetaTitle       string             `bson:"metaTitle" json:"metaTitle"`
	MetaDescription string             `bson:"metaDescription" json:"metaDescription"`
	Slug            string             `bson:"slug" json:"slug"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
