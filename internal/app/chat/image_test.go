package chat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hushchat/internal/pkg/errs"
)

func TestValidateImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	require.NoError(t, os.WriteFile(path, []byte("fake png bytes"), 0o600))

	img, customErr := ValidateImageFile(path)
	require.Nil(t, customErr)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, int64(14), img.Size)
}

func TestValidateImageFileRejectsMissingFile(t *testing.T) {
	_, customErr := ValidateImageFile(filepath.Join(t.TempDir(), "nope.png"))
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrImageFileUnreadable, customErr.Code)
}

func TestValidateImageFileRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o600))

	_, customErr := ValidateImageFile(path)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrImageTypeInvalid, customErr.Code)
}

func TestValidateImageFileRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, customErr := ValidateImageFile(path)
	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrImageTooLarge, customErr.Code)
}
