package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"motorcycle-rental-backend/internal/logger"
)

// LocalStorage stores files on the local filesystem under a base
// directory. Good enough for single-node deployments; the Storage
// interface leaves room for an object-store implementation.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (s *LocalStorage) Save(folder, ext string, r io.Reader) (string, error) {
	folderPath := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(folderPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	fileName := uuid.NewString() + ext
	fullPath := filepath.Join(folderPath, fileName)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	key := filepath.Join(folder, fileName)
	logger.Info("File saved", "key", key)
	return key, nil
}

func (s *LocalStorage) Delete(key string) error {
	fullPath := filepath.Join(s.baseDir, key)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	logger.Info("File deleted", "key", key)
	return nil
}

func (s *LocalStorage) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.baseDir, key))
}
