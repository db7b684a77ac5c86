package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/fingerspell/internal/capture"
)

func TestStreamHandler_MethodNotAllowed(t *testing.T) {
	h := NewStreamHandler(capture.NewMockCamera(nil, false))

	req := httptest.NewRequest(http.MethodPost, "/api/stream", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestStreamHandler_MultipartHeaders(t *testing.T) {
	h := NewStreamHandler(capture.NewMockCamera(nil, false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	ct := rec.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/x-mixed-replace; boundary=") {
		t.Errorf("Content-Type = %q, want multipart/x-mixed-replace with boundary", ct)
	}
	if rec.Header().Get("Cache-Control") != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", rec.Header().Get("Cache-Control"))
	}
}

func TestStreamHandler_EmitsJPEGParts(t *testing.T) {
	if testing.Short() {
		t.Skip("requires OpenCV")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := capture.NewMockCamera([]*gocv.Mat{&frame}, true)
	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cam.Close()

	h := NewStreamHandler(cam)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	body := rec.Body.Bytes()
	if !bytes.Contains(body, []byte("Content-Type: image/jpeg")) {
		t.Error("stream body contains no JPEG part header")
	}
	// JPEG SOI marker.
	if !bytes.Contains(body, []byte{0xff, 0xd8}) {
		t.Error("stream body contains no JPEG payload")
	}
}
