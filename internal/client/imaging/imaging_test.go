package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func TestPrepare_RejectsNonImages(t *testing.T) {
	_, err := Prepare([]byte("definitely not an image"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported image format")
}

func TestPrepare_SmallImageUnchanged(t *testing.T) {
	data := encodePNG(t, 100, 80)
	out, err := Prepare(data)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestPrepare_DownscalesOversizedPNG(t *testing.T) {
	out, err := Prepare(encodePNG(t, MaxDimension*2, MaxDimension))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, MaxDimension, cfg.Width)
	require.Equal(t, MaxDimension/2, cfg.Height)
}

func TestPrepare_DownscalesOversizedJPEGKeepingFormat(t *testing.T) {
	out, err := Prepare(encodeJPEG(t, 800, MaxDimension*3))
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
	require.Equal(t, MaxDimension, cfg.Height)
	require.Less(t, cfg.Width, 800)
}
