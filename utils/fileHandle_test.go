package utils_test

import (
	"testing"

	"finacademy/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsImageFile(t *testing.T) {
	assert.True(t, utils.IsImageFile("avatar.png"))
	assert.True(t, utils.IsImageFile("AVATAR.JPG"))
	assert.True(t, utils.IsImageFile("photo.webp"))
	assert.False(t, utils.IsImageFile("malware.exe"))
	assert.False(t, utils.IsImageFile("document.pdf"))
	assert.False(t, utils.IsImageFile("noextension"))
}

func TestGetFileURL(t *testing.T) {
	assert.Empty(t, utils.GetFileURL(""))
	assert.Equal(t, "/uploads/avatar.png", utils.GetFileURL("/tmp/uploads/avatar.png"))
}
