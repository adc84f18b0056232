package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Planeacion2510/NX-01-sub000/internal/domain/pricing"
)

// unitPrice=100, taxRate=19, supplierDiscount=10, currentStock=2
// ⇒ priceWithTax=119, netPrice=107.1, totalValue=214.2
func TestDerivacionDePrecios(t *testing.T) {
	unitPrice := decimal.NewFromInt(100)
	taxRate := decimal.NewFromInt(19)
	discount := decimal.NewFromInt(10)
	stock := decimal.NewFromInt(2)

	withTax := pricing.PriceWithTax(unitPrice, taxRate)
	assert.True(t, withTax.Equal(decimal.NewFromInt(119)), "priceWithTax = %s", withTax)

	net := pricing.NetPrice(withTax, discount)
	assert.True(t, net.Equal(decimal.NewFromFloat(107.1)), "netPrice = %s", net)

	total := pricing.TotalValue(net, stock)
	assert.True(t, total.Equal(decimal.NewFromFloat(214.2)), "totalValue = %s", total)
}

func TestPreciosSinImpuestoNiDescuento(t *testing.T) {
	price := decimal.NewFromInt(50)
	withTax := pricing.PriceWithTax(price, decimal.Zero)
	assert.True(t, withTax.Equal(price))

	net := pricing.NetPrice(withTax, decimal.Zero)
	assert.True(t, net.Equal(price))
}

func TestTotalValue_StockCero(t *testing.T) {
	total := pricing.TotalValue(decimal.NewFromFloat(107.1), decimal.Zero)
	assert.True(t, total.IsZero())
}
