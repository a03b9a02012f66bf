package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"

	"github.com/spf13/afero"
)

type localStorage struct {
	fs afero.Fs
}

// NewLocal stores objects as files under dir on the host filesystem.
func NewLocal(dir string) (Storage, error) {
	if dir == "" {
		dir = "static"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return NewFS(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// NewFS stores objects on an arbitrary afero filesystem, e.g. afero.NewMemMapFs in tests.
func NewFS(fsys afero.Fs) Storage {
	return &localStorage{fs: fsys}
}

func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	k, err := CleanKey(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	if err := l.fs.MkdirAll(path.Dir(k), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create dir: %w", err)
	}
	f, err := l.fs.Create(k)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create %s: %w", k, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write %s: %w", k, err)
	}

	ct := opt.ContentType
	if ct == "" {
		ct = ContentTypeFor(k)
	}
	st, err := l.fs.Stat(k)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: k, Size: n, ContentType: ct, LastModified: st.ModTime()}, nil
}

func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	k, err := CleanKey(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := l.fs.Stat(k)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		return nil, ObjectInfo{}, ErrNotFound
	}
	f, err := l.fs.Open(k)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{Key: k, Size: st.Size(), ContentType: ContentTypeFor(k), LastModified: st.ModTime()}, nil
}
