// Package sesion mantiene la identidad autenticada del dispositivo. El motor
// de sincronización sólo lee el UID; el login y el logout los maneja la capa
// de API contra el proveedor de identidad externo.
package sesion

import "sync"

// Identidad es la identidad opaca que entrega el proveedor externo
type Identidad struct {
	UID   string // ID estable de Firebase Auth
	Email string // Email informativo (puede estar vacío)
}

// Proveedor expone la identidad actual; nil significa sin sesión
type Proveedor interface {
	Actual() *Identidad
}

// Sesion es el contenedor de sesión con ámbito de proceso
type Sesion struct {
	mu     sync.RWMutex
	actual *Identidad
}

// New crea una sesión vacía
func New() *Sesion {
	return &Sesion{}
}

// Iniciar registra la identidad autenticada
func (s *Sesion) Iniciar(id Identidad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actual = &id
}

// Cerrar descarta la identidad actual
func (s *Sesion) Cerrar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actual = nil
}

// Actual implementa Proveedor
func (s *Sesion) Actual() *Identidad {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.actual == nil {
		return nil
	}
	id := *s.actual
	return &id
}
