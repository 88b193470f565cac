package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StoredFile describes an object persisted by the storage collaborator
type StoredFile struct {
	// Path is the durable local path, used as the document's file URL
	Path     string
	FileName string
}

// LocalStorage stores uploaded files on the local filesystem under a base
// directory supplied at startup.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a local storage collaborator rooted at baseDir
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// Save writes the uploaded file under a unique name and returns its
// location. The original extension is preserved.
func (s *LocalStorage) Save(file *multipart.FileHeader) (StoredFile, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return StoredFile{}, err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(s.baseDir, name)

	src, err := file.Open()
	if err != nil {
		return StoredFile{}, err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return StoredFile{}, err
	}

	return StoredFile{Path: filepath.ToSlash(path), FileName: name}, nil
}

// Delete removes a stored file, tolerating one that is already gone
func (s *LocalStorage) Delete(path string) error {
	err := os.Remove(filepath.FromSlash(path))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
