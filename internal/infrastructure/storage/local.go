package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// LocalStore 本地目录图片存储
// 文件系统以上传目录为根（BasePathFs），任何路径都无法逃逸出该目录
type LocalStore struct {
	fs afero.Fs
}

// NewLocalStore 以root为根创建本地存储，目录不存在时自动创建
func NewLocalStore(root string) (*LocalStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return NewLocalStoreFs(afero.NewBasePathFs(osFs, root)), nil
}

// NewLocalStoreFs 基于任意afero文件系统创建存储（测试使用MemMapFs）
func NewLocalStoreFs(fsys afero.Fs) *LocalStore {
	return &LocalStore{fs: fsys}
}

func (s *LocalStore) Exists(_ context.Context, name string) (bool, error) {
	return afero.Exists(s.fs, name)
}

func (s *LocalStore) Read(_ context.Context, name string) ([]byte, error) {
	return afero.ReadFile(s.fs, name)
}

func (s *LocalStore) Write(_ context.Context, name string, data []byte) error {
	return afero.WriteFile(s.fs, name, data, 0o644)
}

// Remove 文件不存在时不报错
func (s *LocalStore) Remove(_ context.Context, name string) error {
	err := s.fs.Remove(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
