package entity

import "time"

// Estados de una orden de trabajo.
const (
	WorkStatusAbierta   = "abierta"
	WorkStatusEnProceso = "en_proceso"
	WorkStatusCerrada   = "cerrada"
)

// WorkOrder representa una orden de trabajo asociada a una obra/proyecto.
// Number se asigna al crear con el consecutivo de orden_trabajo y es inmutable.
type WorkOrder struct {
	ID          string
	Number      string
	Project     string // nombre de la obra/proyecto
	Description string
	Status      string     // abierta, en_proceso, cerrada
	AssignedTo  string     // responsable (texto libre)
	ClosedAt    *time.Time // fecha_cierre
	CreatedBy   string     // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsClosed indica si la orden ya está cerrada.
func (o *WorkOrder) IsClosed() bool {
	return o.Status == WorkStatusCerrada
}
