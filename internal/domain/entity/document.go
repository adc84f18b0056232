package entity

// Tipos de documento numerado. Cada tipo lleva su propio consecutivo independiente.
const (
	KindPurchaseOrder = "orden_compra"
	KindWorkOrder     = "orden_trabajo"
)

// DocumentSequence es el contador monótono de un tipo de documento.
// LastIssued solo crece: los números nunca se reutilizan aunque se borre el documento.
type DocumentSequence struct {
	Kind       string
	LastIssued int64
}
