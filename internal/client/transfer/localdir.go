package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalDir хранит резервные копии в каталоге на диске. Идентификатором служит
// путь файла относительно корня каталога.
type LocalDir struct {
	root string
}

// NewLocalDir creates a provider rooted at the given directory
func NewLocalDir(root string) *LocalDir {
	return &LocalDir{root: root}
}

// Upload атомарно пишет данные в файл под корнем каталога
func (l *LocalDir) Upload(_ context.Context, data []byte, path string) (string, error) {
	full, rel, err := l.resolve(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	if err := os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to finalize backup file: %w", err)
	}

	return rel, nil
}

// Download читает файл по идентификатору, выданному Upload
func (l *LocalDir) Download(_ context.Context, id string) ([]byte, error) {
	full, _, err := l.resolve(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}
	return data, nil
}

// resolve превращает относительный путь в путь под корнем каталога.
// Выходы за корень (абсолютные пути, "..") отвергаются.
func (l *LocalDir) resolve(name string) (full, rel string, err error) {
	rel = filepath.Clean(name)
	if rel == "." || filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		return "", "", fmt.Errorf("invalid backup path %q", name)
	}
	return filepath.Join(l.root, rel), rel, nil
}
