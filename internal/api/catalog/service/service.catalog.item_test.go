package catsvc

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"momentum_pos/internal/api/authz"
	basemodels "momentum_pos/internal/api/base/models"
	catmodels "momentum_pos/internal/api/catalog/models"
	"momentum_pos/internal/common"
)

// Test quyền sửa item default: chỉ Admin
func TestCheckManageRights_ItemDefault(t *testing.T) {
	s := &CatalogItemService{}
	item := &catmodels.CatalogItem{Visibility: catmodels.VisibilityDefault}

	admin := Actor{UserID: primitive.NewObjectID(), Role: authz.RoleAdmin}
	if err := s.checkManageRights(admin, item, authz.ActionUpdate); err != nil {
		t.Errorf("Admin phải được sửa item default, nhận lỗi: %v", err)
	}

	tech := Actor{UserID: primitive.NewObjectID(), Role: authz.RoleTechnician}
	err := s.checkManageRights(tech, item, authz.ActionUpdate)
	if !errors.Is(err, common.ErrForbidden) {
		t.Errorf("Technician sửa item default phải bị ErrForbidden, nhận: %v", err)
	}
}

// Test quyền sửa item local: chủ sở hữu hoặc Admin
func TestCheckManageRights_ItemLocal(t *testing.T) {
	s := &CatalogItemService{}
	owner := primitive.NewObjectID()
	item := &catmodels.CatalogItem{Visibility: catmodels.VisibilityLocal, AccountID: owner}

	if err := s.checkManageRights(Actor{UserID: owner, Role: authz.RoleTechnician}, item, authz.ActionUpdate); err != nil {
		t.Errorf("Chủ sở hữu phải được sửa item local, nhận lỗi: %v", err)
	}

	if err := s.checkManageRights(Actor{UserID: primitive.NewObjectID(), Role: authz.RoleAdmin}, item, authz.ActionUpdate); err != nil {
		t.Errorf("Admin phải được sửa item local của người khác, nhận lỗi: %v", err)
	}

	err := s.checkManageRights(Actor{UserID: primitive.NewObjectID(), Role: authz.RoleSupervisor}, item, authz.ActionUpdate)
	if !errors.Is(err, common.ErrNotOwner) {
		t.Errorf("Người khác sửa item local phải bị ErrNotOwner, nhận: %v", err)
	}
}

// Test filter hiển thị: item default active + item local của chính actor
func TestVisibleFilter(t *testing.T) {
	actor := Actor{UserID: primitive.NewObjectID(), Role: authz.RoleTechnician}
	filter := visibleFilter(actor)

	if filter["lifecycle"] != basemodels.LifecycleActive {
		t.Errorf("Filter phải chỉ lấy item active, nhận: %v", filter["lifecycle"])
	}

	or, ok := filter["$or"].([]bson.M)
	if !ok || len(or) != 2 {
		t.Fatalf("Filter phải có 2 nhánh $or, nhận: %v", filter["$or"])
	}
	if or[0]["visibility"] != catmodels.VisibilityDefault {
		t.Errorf("Nhánh thứ nhất phải là item default, nhận: %v", or[0])
	}
	if or[1]["visibility"] != catmodels.VisibilityLocal || or[1]["accountId"] != actor.UserID {
		t.Errorf("Nhánh thứ hai phải là item local của actor, nhận: %v", or[1])
	}
}
