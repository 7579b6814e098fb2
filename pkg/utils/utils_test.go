package utils

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestNewRandomToken(t *testing.T) {
	u := New()

	first, err := u.NewRandomToken()
	require.NoError(t, err)
	assert.Len(t, first, 48)

	second, err := u.NewRandomToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestTruncateText(t *testing.T) {
	u := New()

	assert.Equal(t, "short", u.TruncateText("short", 10))
	assert.Equal(t, "short", u.TruncateText("  short  ", 10))

	long := strings.Repeat("a", 200)
	got := u.TruncateText(long, 160)
	assert.Equal(t, strings.Repeat("a", 160)+"...", got)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Robotics ", "robotics", "ROS2", "", "ros2"})
	assert.Equal(t, []string{"robotics", "ros2"}, got)

	assert.Nil(t, NormalizeTags(nil))
}

func TestValidateImageFile(t *testing.T) {
	u := New()

	require.Error(t, u.ValidateImageFile(nil))

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/png")
	valid := &multipart.FileHeader{
		Filename: "photo.png",
		Header:   header,
		Size:     1024,
	}
	assert.NoError(t, u.ValidateImageFile(valid))

	tooBig := &multipart.FileHeader{
		Filename: "big.png",
		Header:   header,
		Size:     10 * 1024 * 1024,
	}
	assert.Error(t, u.ValidateImageFile(tooBig))

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain")
	notImage := &multipart.FileHeader{
		Filename: "notes.txt",
		Header:   textHeader,
		Size:     1024,
	}
	assert.Error(t, u.ValidateImageFile(notImage))
}
