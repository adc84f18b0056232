package entity

import "time"

// Claves de configuración persistida conocidas.
const (
	SettingRelayURL = "relay_url" // URL pública del túnel para el relay de archivos
)

// Setting es un registro de configuración persistido (clave/valor).
// Reemplaza el estado global en memoria: varias instancias del servicio
// comparten la misma configuración a través de la base de datos.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
