package shopsvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	shopdto "momentum_pos/internal/api/workshop/dto"
	shopmodels "momentum_pos/internal/api/workshop/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
)

// CommentService chứa nghiệp vụ bình luận trên job
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Comment]
}

// NewCommentService tạo mới CommentService từ App container
func NewCommentService(a *app.App) *CommentService {
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Comment](a.Col(app.MongoColNames.Comments)),
	}
}

// ListByJob trả về bình luận active của một job, cũ nhất trước
func (s *CommentService) ListByJob(ctx context.Context, jobID primitive.ObjectID) ([]shopmodels.Comment, error) {
	filter := bson.M{"jobId": jobID, "lifecycle": basemodels.LifecycleActive}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// Create tạo bình luận mới trên job
func (s *CommentService) Create(ctx context.Context, input *shopdto.CommentCreateInput) (*shopmodels.Comment, error) {
	jobID, err := primitive.ObjectIDFromHex(input.JobID)
	if err != nil {
		return nil, common.ErrInvalidID
	}

	for _, att := range input.Attachments {
		if att.Type != shopmodels.AttachmentTypeImage && att.Type != shopmodels.AttachmentTypeFile {
			return nil, common.NewError(common.ErrCodeValidationInput, "Loại file đính kèm không hợp lệ", common.StatusBadRequest, nil)
		}
	}

	comment := shopmodels.Comment{
		JobID:          jobID,
		Author:         input.Author,
		AuthorInitials: input.AuthorInitials,
		Role:           input.Role,
		Text:           input.Text,
		Attachments:    input.Attachments,
		Lifecycle:      basemodels.LifecycleActive,
	}

	created, err := s.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete xóa mềm bình luận (lifecycle = deactivated)
func (s *CommentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"lifecycle": basemodels.LifecycleDeactivated},
	})
	return err
}
