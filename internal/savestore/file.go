package savestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/osse101/TextMaple_Go/internal/concurrency"
	"github.com/osse101/TextMaple_Go/internal/domain"
	"github.com/osse101/TextMaple_Go/internal/logger"
)

// FileStore keeps one JSON file per slot. Writes go to a temp file that is
// renamed over the target, so a crash never leaves a half-written save.
type FileStore struct {
	dir   string
	locks *concurrency.LockManager
}

// NewFileStore creates a store rooted at dir. The directory is created on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir, locks: concurrency.NewLockManager()}
}

// Path returns the file backing slot
func (s *FileStore) Path(slot string) string {
	return filepath.Join(s.dir, slot+SlotFileExtension)
}

// Read returns the stored document for slot
func (s *FileStore) Read(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(slot)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(ErrMsgSlotNotFoundFmt, slot, domain.ErrSaveNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadSaveFileFmt, path, err)
	}
	return data, nil
}

// Write atomically replaces the document for slot. Writes to the same slot are serialized.
func (s *FileStore) Write(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	lock := s.locks.Lock(slot)
	defer lock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, saveDirMode); err != nil {
		return fmt.Errorf(ErrMsgCreateSaveDirFmt, s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf(ErrMsgWriteTempFileFmt, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf(ErrMsgWriteTempFileFmt, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf(ErrMsgWriteTempFileFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(ErrMsgWriteTempFileFmt, err)
	}
	if err := os.Chmod(tmpName, saveFileMode); err != nil {
		return fmt.Errorf(ErrMsgWriteTempFileFmt, err)
	}

	path := s.Path(slot)
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf(ErrMsgReplaceSaveFmt, path, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSaveWritten, "path", path, "bytes", len(data))
	return nil
}

// Slots lists the slots that have a save file, sorted by name
func (s *FileStore) Slots(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListSlotsFmt, err)
	}

	var slots []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SlotFileExtension) {
			continue
		}
		slot := strings.TrimSuffix(entry.Name(), SlotFileExtension)
		if ValidateSlot(slot) == nil {
			slots = append(slots, slot)
		}
	}
	sort.Strings(slots)
	return slots, nil
}
