package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/livpay-api/internal/application/dto"
)

// Session es el documento persistido: token y usuario viajan juntos como un solo
// valor atómico, nunca uno sin el otro.
type Session struct {
	Token string            `json:"token"`
	User  *dto.UserResponse `json:"user"`
}

// SessionStorage persiste la sesión de forma atómica: Save y Clear operan sobre
// el documento completo. Load devuelve (nil, nil) si no hay sesión guardada.
type SessionStorage interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStorage guarda la sesión como JSON en disco. La escritura va a un archivo
// temporal y se renombra, para que nunca quede un documento a medias.
type FileStorage struct {
	path string
}

// NewFileStorage construye el almacenamiento sobre la ruta dada.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load lee la sesión persistida; (nil, nil) si el archivo no existe.
func (f *FileStorage) Load() (*Session, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Save escribe el documento completo de forma atómica.
func (f *FileStorage) Save(s *Session) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return os.Rename(tmp, f.path)
}

// Clear elimina la sesión persistida; es idempotente.
func (f *FileStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// MemoryStorage implementación en memoria, para tests.
type MemoryStorage struct {
	mu      sync.Mutex
	session *Session
}

func (m *MemoryStorage) Load() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, nil
}

func (m *MemoryStorage) Save(s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *s
	m.session = &copied
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}
