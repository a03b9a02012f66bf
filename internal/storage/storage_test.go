package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/config"
)

func TestLocal_PutGet(t *testing.T) {
	st := NewFS(afero.NewMemMapFs())
	ctx := context.Background()

	info, err := st.Put(ctx, "itineraries/goa/panaji_0_0.png", bytes.NewReader([]byte("png-bytes")), PutObjectOptions{Size: 9})
	require.NoError(t, err)
	assert.Equal(t, "itineraries/goa/panaji_0_0.png", info.Key)
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	rc, got, err := st.Get(ctx, "itineraries/goa/panaji_0_0.png")
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))
	assert.Equal(t, int64(9), got.Size)
}

func TestLocal_GetMissing(t *testing.T) {
	st := NewFS(afero.NewMemMapFs())

	_, _, err := st.Get(context.Background(), "nope.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_GetDirectoryIsNotFound(t *testing.T) {
	st := NewFS(afero.NewMemMapFs())
	_, err := st.Put(context.Background(), "a/b.png", bytes.NewReader(nil), PutObjectOptions{})
	require.NoError(t, err)

	_, _, err = st.Get(context.Background(), "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_PutHonorsCancelledContext(t *testing.T) {
	st := NewFS(afero.NewMemMapFs())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Put(ctx, "x.png", bytes.NewReader([]byte("x")), PutObjectOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "itineraries/goa/a.png", want: "itineraries/goa/a.png"},
		{in: "/itineraries//goa/a.png", want: "itineraries/goa/a.png"},
		{in: "../../etc/passwd", want: "etc/passwd"},
		{in: `a\..\b.png`, want: "b.png"},
		{in: "", wantErr: true},
		{in: "/", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CleanKey(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", ExtensionFor("image/png"))
	assert.Equal(t, ".jpg", ExtensionFor("image/jpeg"))
	assert.Equal(t, ".bin", ExtensionFor("application/x-unknown-thing"))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{AccessKey: "a", SecretKey: "b", Bucket: "c"}},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000", Bucket: "c"}},
		{name: "missing bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMinIO(tt.cfg)
			assert.Error(t, err)
		})
	}
}
