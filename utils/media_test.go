package utils

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "standard delivery url",
			url:      "https://res.cloudinary.com/demo/image/upload/v1700000000/realSilver/products/abc123.jpg",
			expected: "realSilver/products/abc123",
		},
		{
			name:     "no folder",
			url:      "https://res.cloudinary.com/demo/image/upload/v1/sample.png",
			expected: "sample",
		},
		{
			name:     "no version segment falls back to last two segments",
			url:      "https://res.cloudinary.com/demo/products/abc123.webp",
			expected: "products/abc123",
		},
		{
			name:     "no extension",
			url:      "https://res.cloudinary.com/demo/image/upload/v5/realSilver/products/abc123",
			expected: "realSilver/products/abc123",
		},
		{
			name:    "single segment",
			url:     "https://res.cloudinary.com/demo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := PublicIDFromURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergeImageURLs(t *testing.T) {
	t.Parallel()

	old := []string{"a", "b", "c"}

	tests := []struct {
		name     string
		remove   []string
		add      []string
		expected []string
	}{
		{name: "no changes", expected: []string{"a", "b", "c"}},
		{name: "remove one", remove: []string{"b"}, expected: []string{"a", "c"}},
		{name: "add one", add: []string{"d"}, expected: []string{"a", "b", "c", "d"}},
		{name: "remove and add", remove: []string{"a"}, add: []string{"d"}, expected: []string{"b", "c", "d"}},
		{name: "duplicate add ignored", add: []string{"c", "d"}, expected: []string{"a", "b", "c", "d"}},
		{name: "remove all then add", remove: []string{"a", "b", "c"}, add: []string{"x"}, expected: []string{"x"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MergeImageURLs(old, tt.remove, tt.add))
		})
	}
}

func TestValidateImagesCountAndSize(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ValidateImages(nil), ErrNoImages)

	tooMany := make([]*multipart.FileHeader, MaxImagesPerUpload+1)
	for i := range tooMany {
		tooMany[i] = &multipart.FileHeader{Filename: "x.png", Size: 1}
	}
	assert.ErrorIs(t, ValidateImages(tooMany), ErrTooManyImages)

	huge := []*multipart.FileHeader{{Filename: "big.png", Size: MaxImageSizeBytes + 1}}
	assert.ErrorIs(t, ValidateImages(huge), ErrImageTooLarge)
}

func TestValidateImagesSniffsContentType(t *testing.T) {
	t.Parallel()

	pngHeader := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)

	tests := []struct {
		name    string
		content []byte
		wantErr error
	}{
		{name: "png accepted", content: pngHeader},
		{name: "jpeg accepted", content: append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 64)...)},
		{name: "plain text rejected", content: []byte("definitely not an image"), wantErr: ErrBadImageType},
		{name: "pdf rejected", content: []byte("%PDF-1.4 fake document body"), wantErr: ErrBadImageType},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fh := buildFileHeader(t, "images", "file.png", tt.content)
			err := ValidateImages([]*multipart.FileHeader{fh})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// buildFileHeader round-trips content through a real multipart form so the
// resulting header is openable like one from an actual request.
func buildFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}
