package storage

import (
	"os"
	"path/filepath"

	"vellumBackend/config"
	"vellumBackend/utils"

	"github.com/charmbracelet/log"
	cp "github.com/otiai10/copy"
)

type (
	StorageManager interface {
		ReadAttachment(collectionId string, recordId string, fieldName string, content *[]byte) error
		WriteAttachment(collectionId string, recordId string, fieldName string, content []byte) error
		DeleteAttachment(collectionId string, recordId string, fieldName string) error
		DeleteRecordFiles(collectionId string, recordId string) error

		ArchiveCollection(collectionId string) error
	}

	storageManager struct {
		storagePath string
		archivePath string
		copyOptions cp.Options
	}
)

func CreateStorageManager(config *config.VellumConfig) StorageManager {
	storageManager := &storageManager{
		storagePath: config.FileSystem.Storage,
		archivePath: config.FileSystem.Archive,
		copyOptions: cp.Options{
			Sync: true,
		},
	}

	storageManager.setupDirectories()

	return storageManager
}

func (s *storageManager) ReadAttachment(collectionId string, recordId string, fieldName string, content *[]byte) error {
	data, err := os.ReadFile(s.attachmentPath(collectionId, recordId, fieldName))
	if err != nil {
		return utils.ErrorAttachmentNotFound
	}

	*content = data
	return nil
}

func (s *storageManager) WriteAttachment(collectionId string, recordId string, fieldName string, content []byte) error {
	attachmentPath := s.attachmentPath(collectionId, recordId, fieldName)

	if _, err := os.ReadDir(filepath.Dir(attachmentPath)); err != nil {
		if err = os.MkdirAll(filepath.Dir(attachmentPath), 0750); err != nil {
			return utils.ErrorFileStorage
		}
	}

	//nolint:gosec // We need this file to be accessible
	return os.WriteFile(attachmentPath, content, 0750)
}

func (s *storageManager) DeleteAttachment(collectionId string, recordId string, fieldName string) error {
	attachmentPath := s.attachmentPath(collectionId, recordId, fieldName)

	if _, err := os.Stat(attachmentPath); err != nil {
		return utils.ErrorAttachmentNotFound
	}

	return os.Remove(attachmentPath)
}

func (s *storageManager) DeleteRecordFiles(collectionId string, recordId string) error {
	return os.RemoveAll(filepath.Join(s.storagePath, collectionId, recordId))
}

// ArchiveCollection moves the collection's attachment tree into the
// archive directory. Collections without attachments archive as a no-op.
func (s *storageManager) ArchiveCollection(collectionId string) error {
	collectionPath := filepath.Join(s.storagePath, collectionId)

	if _, err := os.Stat(collectionPath); err != nil {
		return nil
	}

	if err := cp.Copy(collectionPath, filepath.Join(s.archivePath, collectionId), s.copyOptions); err != nil {
		log.Errorf("Failed to archive collection files: %s", err.Error())
		return utils.ErrorFileStorage
	}

	return os.RemoveAll(collectionPath)
}

func (s *storageManager) setupDirectories() {
	if _, err := os.ReadDir(s.storagePath); err != nil || !utils.IsDirectoryWritable(s.storagePath) {
		log.Info("Storage directory not found. Creating.", "dir", s.storagePath)
		if err = os.MkdirAll(s.storagePath, 0750); err != nil {
			log.Fatal("Storage directory is not accessible. Exiting.", "dir", s.storagePath)
			return
		}
	}

	if _, err := os.ReadDir(s.archivePath); err != nil || !utils.IsDirectoryWritable(s.archivePath) {
		log.Info("Archive directory not found. Creating.", "dir", s.archivePath)
		if err = os.MkdirAll(s.archivePath, 0750); err != nil {
			log.Fatal("Archive directory is not accessible. Exiting.", "dir", s.archivePath)
			return
		}
	}
}

func (s *storageManager) attachmentPath(collectionId string, recordId string, fieldName string) string {
	return filepath.Join(s.storagePath, collectionId, recordId, fieldName)
}
