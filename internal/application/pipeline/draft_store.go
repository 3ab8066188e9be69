package pipeline

import (
	"sync"
	"time"
)

// Draft es el resultado transitorio de una generación: se retiene en memoria
// del proceso, por usuario, hasta que se confirma o se descarta. Un reinicio
// del proceso pierde como mucho el borrador sin guardar, nunca filas a medias.
type Draft struct {
	ClientID  string
	Problem   string
	Solution  string
	Angle     string
	CreatedAt time.Time
}

// DraftStore guarda a lo sumo un borrador por usuario. Una nueva generación
// reemplaza al anterior.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

// NewDraftStore construye el almacén de borradores.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]Draft)}
}

// Get devuelve el borrador retenido para el usuario, si existe.
func (s *DraftStore) Get(userID string) (Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drafts[userID]
	return d, ok
}

// Put retiene el borrador del usuario, reemplazando cualquier anterior.
func (s *DraftStore) Put(userID string, d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[userID] = d
}

// Delete descarta el borrador del usuario. Es un no-op si no hay ninguno.
func (s *DraftStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
