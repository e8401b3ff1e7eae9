// Package catsvc chứa nghiệp vụ danh mục phụ tùng và dịch vụ.
package catsvc

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"momentum_pos/internal/api/authz"
	basemodels "momentum_pos/internal/api/base/models"
	basesvc "momentum_pos/internal/api/base/service"
	catdto "momentum_pos/internal/api/catalog/dto"
	catmodels "momentum_pos/internal/api/catalog/models"
	"momentum_pos/internal/app"
	"momentum_pos/internal/common"
)

// Actor là người thực hiện thao tác trên danh mục
type Actor struct {
	UserID primitive.ObjectID
	Role   string
}

// CatalogItemService chứa nghiệp vụ item danh mục
type CatalogItemService struct {
	*basesvc.BaseServiceMongoImpl[catmodels.CatalogItem]
}

// NewCatalogItemService tạo mới CatalogItemService từ App container
func NewCatalogItemService(a *app.App) *CatalogItemService {
	return &CatalogItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catmodels.CatalogItem](a.Col(app.MongoColNames.CatalogItems)),
	}
}

// visibleFilter là filter các item mà actor được thấy:
// item default active + item local active của chính actor
func visibleFilter(actor Actor) bson.M {
	return bson.M{
		"lifecycle": basemodels.LifecycleActive,
		"$or": []bson.M{
			{"visibility": catmodels.VisibilityDefault},
			{"visibility": catmodels.VisibilityLocal, "accountId": actor.UserID},
		},
	}
}

// List trả về các item actor được thấy, sắp xếp theo tên
func (s *CatalogItemService) List(ctx context.Context, actor Actor) ([]catmodels.CatalogItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, visibleFilter(actor), opts)
}

// ListByType trả về các item theo loại service|product, loại khác trả về 400
func (s *CatalogItemService) ListByType(ctx context.Context, actor Actor, itemType string) ([]catmodels.CatalogItem, error) {
	if !catmodels.ValidItemType(itemType) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Loại item không hợp lệ", common.StatusBadRequest, nil)
	}
	filter := visibleFilter(actor)
	filter["type"] = itemType
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, filter, opts)
}

// Create tạo item danh mục mới.
// Visibility bị ép về local trừ khi Admin yêu cầu default; item local luôn
// thuộc về người tạo.
func (s *CatalogItemService) Create(ctx context.Context, actor Actor, input *catdto.CatalogItemCreateInput) (*catmodels.CatalogItem, error) {
	if !catmodels.ValidItemType(input.Type) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Loại item không hợp lệ", common.StatusBadRequest, nil)
	}
	if input.Cost == nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Thiếu giá vốn của item", common.StatusBadRequest, nil)
	}

	visibility := catmodels.VisibilityLocal
	var accountID primitive.ObjectID
	if input.Visibility == catmodels.VisibilityDefault {
		if !authz.Can(actor.Role, authz.ResourceCatalogDefault, authz.ActionCreate) {
			return nil, common.ErrForbidden
		}
		visibility = catmodels.VisibilityDefault
	} else {
		accountID = actor.UserID
	}

	item := catmodels.CatalogItem{
		Name:                   input.Name,
		Type:                   input.Type,
		Description:            input.Description,
		Cost:                   *input.Cost,
		BasePrice:              input.BasePrice,
		DefaultDurationMinutes: input.DefaultDurationMinutes,
		EstimatedTime:          input.EstimatedTime,
		SubOptions:             input.SubOptions,
		AllowComments:          input.AllowComments,
		AllowedParts:           input.AllowedParts,
		Quantity:               input.Quantity,
		Unit:                   input.Unit,
		Visibility:             visibility,
		AccountID:              accountID,
		Lifecycle:              basemodels.LifecycleActive,
	}

	created, err := s.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"item_id": created.ID.Hex(), "visibility": created.Visibility}).Info("Catalog: Tạo item mới")
	return &created, nil
}

// Update cập nhật item. Item default chỉ Admin; item local chỉ chủ sở hữu hoặc Admin.
func (s *CatalogItemService) Update(ctx context.Context, actor Actor, id primitive.ObjectID, input *catdto.CatalogItemUpdateInput) (*catmodels.CatalogItem, error) {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkManageRights(actor, &item, authz.ActionUpdate); err != nil {
		return nil, err
	}

	set := map[string]interface{}{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Cost != nil {
		set["cost"] = *input.Cost
	}
	if input.BasePrice != nil {
		set["basePrice"] = *input.BasePrice
	}
	if input.DefaultDurationMinutes != nil {
		set["defaultDurationMinutes"] = *input.DefaultDurationMinutes
	}
	if input.EstimatedTime != nil {
		set["estimatedTime"] = *input.EstimatedTime
	}
	if input.SubOptions != nil {
		set["subOptions"] = input.SubOptions
	}
	if input.AllowComments != nil {
		set["allowComments"] = *input.AllowComments
	}
	if input.AllowedParts != nil {
		set["allowedParts"] = input.AllowedParts
	}
	if input.Quantity != nil {
		set["quantity"] = *input.Quantity
	}
	if input.Unit != nil {
		set["unit"] = *input.Unit
	}

	updated, err := s.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa item danh mục.
// Item default: chỉ Admin, và chỉ deactivate (giữ lại cho hệ thống).
// Item local: chỉ chủ sở hữu, xóa cứng.
func (s *CatalogItemService) Delete(ctx context.Context, actor Actor, id primitive.ObjectID) error {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if item.Visibility == catmodels.VisibilityDefault {
		if !authz.Can(actor.Role, authz.ResourceCatalogDefault, authz.ActionDelete) {
			return common.ErrForbidden
		}
		_, err := s.UpdateById(ctx, id, &basesvc.UpdateData{
			Set: map[string]interface{}{"lifecycle": basemodels.LifecycleDeactivated},
		})
		return err
	}

	if item.AccountID != actor.UserID {
		return common.ErrNotOwner
	}
	return s.DeleteById(ctx, id)
}

// checkManageRights kiểm tra actor có quyền sửa item không
func (s *CatalogItemService) checkManageRights(actor Actor, item *catmodels.CatalogItem, action string) error {
	if item.Visibility == catmodels.VisibilityDefault {
		if !authz.Can(actor.Role, authz.ResourceCatalogDefault, action) {
			return common.ErrForbidden
		}
		return nil
	}
	if item.AccountID != actor.UserID && actor.Role != authz.RoleAdmin {
		return common.ErrNotOwner
	}
	return nil
}
