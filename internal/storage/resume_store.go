package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ResumeStore keeps at most one resume file per user on local disk, keyed as
// {userID}.pdf. A new upload for the same user overwrites the previous file.
type ResumeStore struct {
	dir string
}

// NewResumeStore creates the upload directory if needed.
func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Save writes the uploaded content for the user, replacing any prior file.
func (s *ResumeStore) Save(userID string, content io.Reader) (string, error) {
	path := s.Path(userID)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("write resume file: %w", err)
	}
	return path, nil
}

// Path returns the on-disk location for a user's resume.
func (s *ResumeStore) Path(userID string) string {
	return filepath.Join(s.dir, userID+".pdf")
}
