package pricing

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// PriceWithTax calcula el precio con impuesto: unitPrice × (1 + taxRate/100).
// taxRate se expresa como porcentaje (19 = 19%).
func PriceWithTax(unitPrice, taxRate decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(taxRate.Div(cien))
	return unitPrice.Mul(factor)
}

// NetPrice aplica el descuento del proveedor sobre el precio con impuesto:
// priceWithTax × (1 − supplierDiscount/100).
func NetPrice(priceWithTax, supplierDiscount decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(supplierDiscount.Div(cien))
	return priceWithTax.Mul(factor)
}

// TotalValue valoriza el stock actual al precio neto: netPrice × currentStock.
func TotalValue(netPrice, currentStock decimal.Decimal) decimal.Decimal {
	return netPrice.Mul(currentStock)
}
