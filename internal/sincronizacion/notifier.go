package sincronizacion

import (
	"sync"
	"time"

	"github.com/dmfierro/ventas-campo/pkg/logger"
)

// Notificador recibe el resultado visible de una pasada de sincronización.
// Equivale al toast del dispositivo: transitorio, nunca modal.
type Notificador interface {
	Exito(titulo, detalle string)
	Fallo(titulo, detalle string)
}

// LogNotificador escribe las notificaciones en el log
type LogNotificador struct {
	log logger.Logger
}

// NewLogNotificador crea un notificador sobre el logger
func NewLogNotificador(log logger.Logger) *LogNotificador {
	return &LogNotificador{log: log}
}

// Exito implementa Notificador
func (n *LogNotificador) Exito(titulo, detalle string) {
	n.log.Info(titulo, "detalle", detalle)
}

// Fallo implementa Notificador
func (n *LogNotificador) Fallo(titulo, detalle string) {
	n.log.Error(titulo, "detalle", detalle)
}

// Notificacion es la última notificación emitida, para que la API pueda
// mostrársela al dispositivo que consulta el estado.
type Notificacion struct {
	Exito   bool      `json:"exito"`
	Titulo  string    `json:"titulo"`
	Detalle string    `json:"detalle,omitempty"`
	Fecha   time.Time `json:"fecha"`
}

// MemoriaNotificador retiene la última notificación emitida
type MemoriaNotificador struct {
	mu     sync.RWMutex
	ultima *Notificacion
}

// NewMemoriaNotificador crea un notificador en memoria
func NewMemoriaNotificador() *MemoriaNotificador {
	return &MemoriaNotificador{}
}

// Exito implementa Notificador
func (n *MemoriaNotificador) Exito(titulo, detalle string) {
	n.guardar(Notificacion{Exito: true, Titulo: titulo, Detalle: detalle, Fecha: time.Now()})
}

// Fallo implementa Notificador
func (n *MemoriaNotificador) Fallo(titulo, detalle string) {
	n.guardar(Notificacion{Exito: false, Titulo: titulo, Detalle: detalle, Fecha: time.Now()})
}

// Ultima devuelve la última notificación, o nil si no hubo ninguna
func (n *MemoriaNotificador) Ultima() *Notificacion {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.ultima == nil {
		return nil
	}
	u := *n.ultima
	return &u
}

func (n *MemoriaNotificador) guardar(notif Notificacion) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.ultima = &notif
}

// MultiNotificador reparte cada notificación entre varios destinos
type MultiNotificador struct {
	destinos []Notificador
}

// NewMultiNotificador combina varios notificadores en uno
func NewMultiNotificador(destinos ...Notificador) *MultiNotificador {
	return &MultiNotificador{destinos: destinos}
}

// Exito implementa Notificador
func (n *MultiNotificador) Exito(titulo, detalle string) {
	for _, d := range n.destinos {
		d.Exito(titulo, detalle)
	}
}

// Fallo implementa Notificador
func (n *MultiNotificador) Fallo(titulo, detalle string) {
	for _, d := range n.destinos {
		d.Fallo(titulo, detalle)
	}
}
