package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/pixelift/pixelift-api/internal/middlewares"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxUpload = 25 << 20

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type testFile struct {
	contentType string
	data        []byte
}

// newMultipartRequest builds a request with the given form fields and an
// optional image part. An empty contentType leaves the part untyped.
func newMultipartRequest(t *testing.T, target string, fields map[string]string, file *testFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="upload"`, uploadField))
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func withUser(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(middlewares.WithUser(req.Context(), user))
}

func TestReadUpload(t *testing.T) {
	tests := []struct {
		name            string
		file            *testFile
		expectedType    string
		expectedErr     error
		expectedMessage string
	}{
		{
			name:         "declared jpeg",
			file:         &testFile{contentType: "image/jpeg", data: make([]byte, 1024)},
			expectedType: "image/jpeg",
		},
		{
			name:         "jpg alias",
			file:         &testFile{contentType: "image/jpg", data: make([]byte, 10)},
			expectedType: "image/jpeg",
		},
		{
			name:         "sniffed png",
			file:         &testFile{data: pngHeader},
			expectedType: "image/png",
		},
		{
			name:        "missing image",
			expectedErr: services.ErrImageRequired,
		},
		{
			name:        "empty image",
			file:        &testFile{contentType: "image/png"},
			expectedErr: services.ErrImageRequired,
		},
		{
			name:            "unsupported type",
			file:            &testFile{contentType: "image/gif", data: []byte("GIF89a......")},
			expectedMessage: "Invalid file type: image/gif. Allowed types: image/jpeg, image/png, image/webp",
		},
		{
			name:            "webp over ceiling",
			file:            &testFile{contentType: "image/webp", data: make([]byte, 10<<20+1)},
			expectedMessage: "File too large: maximum size for image/webp is 10MB",
		},
		{
			name:            "jpeg over ceiling",
			file:            &testFile{contentType: "image/jpeg", data: make([]byte, 15<<20+1)},
			expectedMessage: "File too large: maximum size for image/jpeg is 15MB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newMultipartRequest(t, "/api/upscale", nil, tt.file)

			upload, err := readUpload(httptest.NewRecorder(), req, testMaxUpload)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.expectedMessage != "":
				require.Error(t, err)
				assert.Equal(t, tt.expectedMessage, err.Error())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedType, upload.ContentType)
				assert.Equal(t, tt.file.data, upload.Data)
			}
		})
	}
}

func TestReadUpload_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/upscale", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	_, err := readUpload(httptest.NewRecorder(), req, testMaxUpload)
	assert.ErrorIs(t, err, services.ErrImageRequired)
}

func TestReadUpload_PNGAtCeilingWithDefaultCap(t *testing.T) {
	data := make([]byte, 20<<20)
	copy(data, pngHeader)
	req := newMultipartRequest(t, "/api/upscale", map[string]string{"scale": "2", "imageType": "general"}, &testFile{contentType: "image/png", data: data})
	require.Greater(t, req.ContentLength, int64(20<<20))

	upload, err := readUpload(httptest.NewRecorder(), req, 20<<20)
	require.NoError(t, err)
	assert.Equal(t, "image/png", upload.ContentType)
	assert.Len(t, upload.Data, 20<<20)
}

func TestReadUpload_RequestTooLarge(t *testing.T) {
	req := newMultipartRequest(t, "/api/upscale", nil, &testFile{contentType: "image/png", data: make([]byte, multipartEnvelope+2048)})

	_, err := readUpload(httptest.NewRecorder(), req, 1024)
	require.Error(t, err)
	assert.Equal(t, "File too large: maximum request size is 1MB", err.Error())
}
