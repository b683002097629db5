package dto

import "time"

// NotificacionResponse es el último aviso emitido por el motor de sincronización
type NotificacionResponse struct {
	Exito   bool      `json:"exito"`
	Titulo  string    `json:"titulo"`
	Detalle string    `json:"detalle,omitempty"`
	Fecha   time.Time `json:"fecha"`
}

// EstadoResponse describe el estado actual del almacén de datos
type EstadoResponse struct {
	Cargando           bool                  `json:"cargando"`
	UltimaSync         *time.Time            `json:"ultimaSync,omitempty"`
	UltimaNotificacion *NotificacionResponse `json:"ultimaNotificacion,omitempty"`
}
