package authz

import "testing"

// Test bảng phân quyền: Admin có toàn quyền trên mọi resource
func TestCan_AdminCoToanQuyen(t *testing.T) {
	resources := []string{
		ResourceCustomers, ResourceVehicles, ResourceJobs, ResourceInvoices,
		ResourceServiceHistory, ResourceComments, ResourceCatalog,
		ResourceCatalogDefault, ResourceNotifications, ResourceReports,
		ResourceSettings, ResourceUsers,
	}
	actions := []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete}

	for _, resource := range resources {
		for _, action := range actions {
			if !Can(RoleAdmin, resource, action) {
				t.Errorf("Admin phải được %s trên %s", action, resource)
			}
		}
	}
}

// Test chỉ Admin được quản lý catalog default
func TestCan_CatalogDefaultChiAdmin(t *testing.T) {
	for _, role := range []string{RoleSupervisor, RoleTechnician, RoleCashier} {
		if Can(role, ResourceCatalogDefault, ActionCreate) {
			t.Errorf("%s không được tạo catalog default", role)
		}
		if Can(role, ResourceCatalogDefault, ActionDelete) {
			t.Errorf("%s không được xóa catalog default", role)
		}
		if !Can(role, ResourceCatalogDefault, ActionRead) {
			t.Errorf("%s phải được đọc catalog default", role)
		}
	}

	if !Can(RoleAdmin, ResourceCatalogDefault, ActionDelete) {
		t.Error("Admin phải được xóa catalog default")
	}
}

// Test Technician không được xóa invoice, Cashier được quản lý invoice
func TestCan_PhanQuyenInvoice(t *testing.T) {
	if Can(RoleTechnician, ResourceInvoices, ActionCreate) {
		t.Error("Technician không được tạo invoice")
	}
	if !Can(RoleCashier, ResourceInvoices, ActionCreate) {
		t.Error("Cashier phải được tạo invoice")
	}
	if !Can(RoleCashier, ResourceInvoices, ActionDelete) {
		t.Error("Cashier phải được xóa invoice")
	}
}

// Test role/resource/action lạ bị từ chối mặc định
func TestCan_MacDinhTuChoi(t *testing.T) {
	if Can("Ghost", ResourceCustomers, ActionRead) {
		t.Error("Role không tồn tại phải bị từ chối")
	}
	if Can(RoleAdmin, "unknown_resource", ActionRead) {
		t.Error("Resource không tồn tại phải bị từ chối")
	}
	if Can(RoleTechnician, ResourceCustomers, "unknown_action") {
		t.Error("Action không tồn tại phải bị từ chối")
	}
	if Can("", "", "") {
		t.Error("Tham số rỗng phải bị từ chối")
	}
}

// Test Cashier được gửi notification nhưng không được tạo/xóa
func TestCan_CashierGuiNotification(t *testing.T) {
	if !Can(RoleCashier, ResourceNotifications, ActionSend) {
		t.Error("Cashier phải được gửi notification")
	}
	if Can(RoleCashier, ResourceNotifications, ActionDelete) {
		t.Error("Cashier không được xóa notification")
	}
}

// Test danh sách role hợp lệ và role public
func TestIsValidRole_IsPublicRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleSupervisor, RoleTechnician, RoleCashier} {
		if !IsValidRole(role) {
			t.Errorf("%s phải là role hợp lệ", role)
		}
	}
	if IsValidRole("SuperAdmin") {
		t.Error("SuperAdmin không phải role hợp lệ")
	}

	if IsPublicRole(RoleAdmin) {
		t.Error("Admin không được phép chọn khi đăng ký public")
	}
	for _, role := range []string{RoleSupervisor, RoleTechnician, RoleCashier} {
		if !IsPublicRole(role) {
			t.Errorf("%s phải được phép chọn khi đăng ký public", role)
		}
	}
}
