package shopsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	shopmodels "momentum_pos/internal/api/workshop/models"
)

// Test tính subtotal từ các dòng hóa đơn
func TestComputeSubtotal(t *testing.T) {
	assert.Equal(t, 0.0, ComputeSubtotal(nil))
	assert.Equal(t, 0.0, ComputeSubtotal([]shopmodels.InvoiceItem{}))

	items := []shopmodels.InvoiceItem{
		{Description: "Thay nhớt", Quantity: 1, Price: 1500},
		{Description: "Lọc gió", Quantity: 2, Price: 450},
	}
	assert.Equal(t, 2400.0, ComputeSubtotal(items))
}

// Test tính tổng tiền: subtotal + thuế - giảm giá, không âm
func TestComputeAmount(t *testing.T) {
	assert.Equal(t, 1000.0, ComputeAmount(1000, 0, 0))
	assert.Equal(t, 1150.0, ComputeAmount(1000, 200, 50))

	// Giảm giá lớn hơn tổng tiền thì về 0, không âm
	assert.Equal(t, 0.0, ComputeAmount(100, 0, 500))
}

// Test định dạng số hóa đơn INV-000001
func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-000001", FormatInvoiceNumber(1))
	assert.Equal(t, "INV-000042", FormatInvoiceNumber(42))
	assert.Equal(t, "INV-123456", FormatInvoiceNumber(123456))
	assert.Equal(t, "INV-1234567", FormatInvoiceNumber(1234567))
}
