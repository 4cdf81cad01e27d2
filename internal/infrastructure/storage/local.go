// Package storage guarda los PDF subidos en el filesystem local del servicio.
// La fila de documents persiste la ruta relativa; el directorio raíz viene de
// STORAGE_DIR y se crea al arrancar.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhoicas/Distriquim-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore implementación de usecase.FileStore sobre un directorio local.
type LocalStore struct {
	root string
}

// NewLocalStore crea el directorio raíz si no existe.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

// Save escribe el contenido bajo el nombre dado (generado por el caller, no
// el nombre original del upload) y devuelve la ruta relativa y los bytes escritos.
func (s *LocalStore) Save(name string, r io.Reader) (string, int64, error) {
	full := filepath.Join(s.root, name)
	f, err := os.Create(full)
	if err != nil {
		return "", 0, fmt.Errorf("storage: crear archivo: %w", err)
	}
	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(full)
		return "", 0, fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return name, size, nil
}

// Remove elimina un archivo por su ruta relativa.
func (s *LocalStore) Remove(path string) error {
	if err := os.Remove(filepath.Join(s.root, path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar archivo: %w", err)
	}
	return nil
}

// FullPath devuelve la ruta absoluta dentro del root para servir la descarga.
func (s *LocalStore) FullPath(path string) string {
	return filepath.Join(s.root, path)
}
