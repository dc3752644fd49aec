package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-admin-api/internal/domain/repository"
	"github.com/jhoicas/ecommerce-admin-api/internal/infrastructure/storage"
)

func newStore() (*storage.FileStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	return storage.NewFileStore(fs, 1024), fs
}

func TestSaveTempYRelocate(t *testing.T) {
	store, fs := newStore()
	ctx := context.Background()

	ref, size, err := store.SaveTemp(ctx, "Logo.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "tmp/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.Equal(t, int64(9), size)

	path, err := store.Relocate(ctx, ref, "brands")
	require.NoError(t, err)
	assert.Equal(t, "brands/"+strings.TrimPrefix(ref, "tmp/"), path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	exists, _ := afero.Exists(fs, ref)
	assert.False(t, exists, "la referencia temporal ya no existe")
}

func TestRelocate_ReferenciaInexistente(t *testing.T) {
	store, _ := newStore()

	_, err := store.Relocate(context.Background(), "tmp/nada.png", "brands")
	assert.ErrorIs(t, err, repository.ErrAssetNotFound)

	_, err = store.Relocate(context.Background(), "brands/ya-guardado.png", "brands")
	assert.ErrorIs(t, err, repository.ErrAssetNotFound, "solo se mueven referencias temporales")
}

func TestCheckTemp(t *testing.T) {
	store, fs := newStore()
	ctx := context.Background()
	ref, _, err := store.SaveTemp(ctx, "a.png", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "brands/b.png", []byte("x"), 0o644))

	assert.NoError(t, store.CheckTemp(ctx, ref))
	assert.ErrorIs(t, store.CheckTemp(ctx, "tmp/nada.png"), repository.ErrAssetNotFound)
	assert.ErrorIs(t, store.CheckTemp(ctx, "brands/b.png"), repository.ErrAssetNotFound, "un archivo definitivo no es temporal")
	assert.ErrorIs(t, store.CheckTemp(ctx, "tmp/../brands/b.png"), repository.ErrAssetNotFound)

	exists, _ := afero.Exists(fs, ref)
	assert.True(t, exists, "verificar no mueve el archivo")
}

func TestRutasFueraDeLaRaiz(t *testing.T) {
	store, _ := newStore()
	ctx := context.Background()

	_, err := store.Relocate(ctx, "tmp/../../etc/passwd", "brands")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	_, err = store.Relocate(ctx, "/tmp/x.png", "brands")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	ref, _, err := store.SaveTemp(ctx, "a.png", strings.NewReader("x"))
	require.NoError(t, err)
	_, err = store.Relocate(ctx, ref, "../outside")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	assert.ErrorIs(t, store.Delete(ctx, "../secrets"), storage.ErrInvalidPath)
}

func TestSaveTemp_Rechazos(t *testing.T) {
	store, fs := newStore()
	ctx := context.Background()

	_, _, err := store.SaveTemp(ctx, "script.sh", strings.NewReader("x"))
	assert.ErrorIs(t, err, storage.ErrInvalidPath)

	_, _, err = store.SaveTemp(ctx, "big.png", strings.NewReader(strings.Repeat("x", 2048)))
	assert.ErrorIs(t, err, storage.ErrTooLarge)
	entries, _ := afero.ReadDir(fs, storage.TempFolder)
	assert.Empty(t, entries, "no quedan archivos parciales")
}

func TestDelete_Idempotente(t *testing.T) {
	store, fs := newStore()
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "brands/a.png", []byte("x"), 0o644))

	require.NoError(t, store.Delete(ctx, "brands/a.png"))
	exists, _ := afero.Exists(fs, "brands/a.png")
	assert.False(t, exists)
	assert.NoError(t, store.Delete(ctx, "brands/a.png"))
}

func TestContextoCancelado(t *testing.T) {
	store, _ := newStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Relocate(ctx, "tmp/a.png", "brands")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPublicFs_SoloCarpetasDefinitivas(t *testing.T) {
	store, fs := newStore()
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "brands/logo.png", []byte("logo"), 0o644))
	pending, _, err := store.SaveTemp(ctx, "nuevo.png", strings.NewReader("pendiente"))
	require.NoError(t, err)

	public := afero.NewHttpFs(store.PublicFs("brands", "avatars"))

	f, err := public.Open("/brands/logo.png")
	require.NoError(t, err, "los archivos reubicados se sirven")
	f.Close()

	_, err = public.Open("/" + pending)
	assert.Error(t, err, "las subidas pendientes no se sirven")

	require.NoError(t, afero.WriteFile(fs, "secrets.txt", []byte("x"), 0o644))
	_, err = public.Open("/secrets.txt")
	assert.Error(t, err, "la raíz no se sirve")

	assert.Error(t, store.PublicFs("brands").Remove("brands/logo.png"), "la vista es de solo lectura")
}
