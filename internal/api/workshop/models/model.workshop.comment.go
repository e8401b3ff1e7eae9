package shopmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại file đính kèm của bình luận
const (
	AttachmentTypeImage = "image"
	AttachmentTypeFile  = "file"
)

// CommentAttachment là một file đính kèm của bình luận
type CommentAttachment struct {
	Name string `json:"name" bson:"name"`
	Type string `json:"type" bson:"type"` // image | file
	URL  string `json:"url" bson:"url"`
}

// Comment là một bình luận trên job sửa chữa
type Comment struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	JobID          primitive.ObjectID  `json:"jobId" bson:"jobId"`
	Author         string              `json:"author" bson:"author"`
	AuthorInitials string              `json:"authorInitials,omitempty" bson:"authorInitials,omitempty"`
	Role           string              `json:"role,omitempty" bson:"role,omitempty"`
	Text           string              `json:"text" bson:"text"`
	Attachments    []CommentAttachment `json:"attachments,omitempty" bson:"attachments,omitempty"`
	Lifecycle      string              `json:"lifecycle" bson:"lifecycle"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}
