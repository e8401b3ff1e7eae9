// Package authz chứa bảng phân quyền khai báo của hệ thống.
// Mọi kiểm tra role nằm ở một chỗ duy nhất - handler và middleware chỉ gọi Can.
// Kiểm tra ownership (item catalog local thuộc về ai) nằm trong service vì cần
// đọc document.
package authz

// Các role của hệ thống
const (
	RoleAdmin      = "Admin"
	RoleSupervisor = "Supervisor"
	RoleTechnician = "Technician"
	RoleCashier    = "Cashier"
)

// Các resource được bảo vệ
const (
	ResourceCustomers      = "customers"
	ResourceVehicles       = "vehicles"
	ResourceJobs           = "jobs"
	ResourceInvoices       = "invoices"
	ResourceServiceHistory = "service_history"
	ResourceComments       = "comments"
	ResourceCatalog        = "catalog"
	ResourceCatalogDefault = "catalog_default"
	ResourceNotifications  = "notifications"
	ResourceReports        = "reports"
	ResourceSettings       = "settings"
	ResourceUsers          = "users"
)

// Các action trên resource
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionSend   = "send"
)

// actionSet là tập action được phép trên một resource
type actionSet map[string]bool

var allActions = actionSet{
	ActionRead:   true,
	ActionCreate: true,
	ActionUpdate: true,
	ActionDelete: true,
	ActionSend:   true,
}

var readOnly = actionSet{ActionRead: true}

var readWrite = actionSet{
	ActionRead:   true,
	ActionCreate: true,
	ActionUpdate: true,
}

// permissions là bảng phân quyền duy nhất của hệ thống.
// Role không có trong bảng hoặc resource không có trong map của role = từ chối.
var permissions = map[string]map[string]actionSet{
	RoleAdmin: {
		ResourceCustomers:      allActions,
		ResourceVehicles:       allActions,
		ResourceJobs:           allActions,
		ResourceInvoices:       allActions,
		ResourceServiceHistory: allActions,
		ResourceComments:       allActions,
		ResourceCatalog:        allActions,
		ResourceCatalogDefault: allActions, // chỉ Admin được quản lý item default
		ResourceNotifications:  allActions,
		ResourceReports:        allActions,
		ResourceSettings:       allActions,
		ResourceUsers:          allActions,
	},
	RoleSupervisor: {
		ResourceCustomers:      allActions,
		ResourceVehicles:       allActions,
		ResourceJobs:           allActions,
		ResourceInvoices:       allActions,
		ResourceServiceHistory: allActions,
		ResourceComments:       allActions,
		ResourceCatalog:        allActions,
		ResourceCatalogDefault: readOnly,
		ResourceNotifications:  allActions,
		ResourceReports:        allActions,
		ResourceSettings:       allActions,
	},
	RoleTechnician: {
		ResourceCustomers:      readWrite,
		ResourceVehicles:       readWrite,
		ResourceJobs:           readWrite,
		ResourceInvoices:       readOnly,
		ResourceServiceHistory: readWrite,
		ResourceComments:       allActions,
		ResourceCatalog:        readWrite,
		ResourceCatalogDefault: readOnly,
		ResourceNotifications:  readOnly,
		ResourceReports:        readOnly,
		ResourceSettings:       readOnly,
	},
	RoleCashier: {
		ResourceCustomers:      readWrite,
		ResourceVehicles:       readOnly,
		ResourceJobs:           readOnly,
		ResourceInvoices:       allActions,
		ResourceServiceHistory: readOnly,
		ResourceComments:       readWrite,
		ResourceCatalog:        readOnly,
		ResourceCatalogDefault: readOnly,
		ResourceNotifications: actionSet{
			ActionRead: true,
			ActionSend: true,
		},
		ResourceReports:  readOnly,
		ResourceSettings: readOnly,
	},
}

// Can kiểm tra role có được thực hiện action trên resource không.
// Mặc định từ chối: role/resource/action không có trong bảng trả về false.
func Can(role string, resource string, action string) bool {
	resources, ok := permissions[role]
	if !ok {
		return false
	}
	actions, ok := resources[resource]
	if !ok {
		return false
	}
	return actions[action]
}

// IsValidRole kiểm tra role có thuộc danh sách role hợp lệ không
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleTechnician, RoleCashier:
		return true
	}
	return false
}

// IsPublicRole kiểm tra role có được phép chọn khi đăng ký public không.
// Admin chỉ được gán cho user đầu tiên của hệ thống.
func IsPublicRole(role string) bool {
	switch role {
	case RoleSupervisor, RoleTechnician, RoleCashier:
		return true
	}
	return false
}
