package controller

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
)

func newCarouselTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)

	ctrl := NewCarouselController(db)
	app := fiber.New()
	app.Put("/admin/carousel/:id", ctrl.Update)
	return app, mock
}

// seedBanner points the media root at a temp dir holding one stored image and
// returns the banner id plus the stored file's absolute path.
func seedBanner(t *testing.T, mock sqlmock.Sqlmock) (uuid.UUID, string) {
	t.Helper()
	configs.MediaRoot = t.TempDir()

	oldRel := "carousel/old.webp"
	oldAbs := filepath.Join(configs.MediaRoot, filepath.FromSlash(oldRel))
	require.NoError(t, os.MkdirAll(filepath.Dir(oldAbs), 0o755))
	require.NoError(t, os.WriteFile(oldAbs, []byte("webp"), 0o644))

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "carousel_images"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"carousel_image_id", "carousel_image_title", "carousel_image_path"}).
			AddRow(id.String(), "Old banner", oldRel))
	return id, oldAbs
}

func bannerUpdateRequest(t *testing.T, id uuid.UUID) *http.Request {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("carousel_image_title", "Updated banner"))
	fw, err := w.CreateFormFile("image", "banner.png")
	require.NoError(t, err)
	_, err = fw.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(fiber.MethodPut, "/admin/carousel/"+id.String(), &body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUpdateBannerKeepsOldImageWhenSaveFails(t *testing.T) {
	app, mock := newCarouselTestApp(t)
	id, oldAbs := seedBanner(t, mock)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "carousel_images"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	resp, err := app.Test(bannerUpdateRequest(t, id))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	// the row still points at the old file, so it must survive
	_, statErr := os.Stat(oldAbs)
	assert.NoError(t, statErr)

	// the orphaned replacement upload is cleaned up
	files, err := filepath.Glob(filepath.Join(configs.MediaRoot, "carousel", "*.webp"))
	require.NoError(t, err)
	assert.Equal(t, []string{oldAbs}, files)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBannerRemovesOldImageAfterSave(t *testing.T) {
	app, mock := newCarouselTestApp(t)
	id, oldAbs := seedBanner(t, mock)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "carousel_images"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(bannerUpdateRequest(t, id))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, statErr := os.Stat(oldAbs)
	assert.True(t, os.IsNotExist(statErr))

	files, err := filepath.Glob(filepath.Join(configs.MediaRoot, "carousel", "*.webp"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.NotEqual(t, oldAbs, files[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
