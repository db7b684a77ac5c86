package server

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/fingerspell/internal/capture"
)

// streamMaxFPS caps the preview rate. The pipeline may drive the camera at
// full recognition speed; browser previews do not need more than this.
const streamMaxFPS = 15

// StreamHandler serves the camera preview as a multipart MJPEG stream.
// Frame pacing follows the camera's current capture rate, so the preview
// slows down together with the pipeline when the scene goes idle.
type StreamHandler struct {
	camera capture.Camera
}

// NewStreamHandler creates a new StreamHandler with the given camera.
func NewStreamHandler(camera capture.Camera) *StreamHandler {
	return &StreamHandler{camera: camera}
}

func (h *StreamHandler) frameInterval() time.Duration {
	fps := h.camera.FPS()
	if fps <= 0 || fps > streamMaxFPS {
		fps = streamMaxFPS
	}
	return time.Second / time.Duration(fps)
}

// ServeHTTP streams frames until the client disconnects.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := multipart.NewWriter(w)
	defer parts.Close()

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary="+parts.Boundary())
	w.Header().Set("Cache-Control", "no-cache")

	flusher, _ := w.(http.Flusher)
	ticker := time.NewTicker(h.frameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		sent, err := h.writeFrame(parts)
		if err != nil {
			// The client went away mid-write.
			return
		}
		if sent && flusher != nil {
			flusher.Flush()
		}

		// Pick up capture rate changes made by the pipeline.
		ticker.Reset(h.frameInterval())
	}
}

// writeFrame grabs one frame, JPEG-encodes it and emits it as a multipart
// part. Camera and encoder failures skip the frame (sent=false, nil error);
// only a failed write to the client is reported as an error.
func (h *StreamHandler) writeFrame(parts *multipart.Writer) (sent bool, err error) {
	frame, err := h.camera.ReadFrame()
	if err != nil {
		return false, nil
	}

	buf, err := gocv.IMEncode(".jpg", *frame)
	frame.Close()
	if err != nil {
		return false, nil
	}
	defer buf.Close()

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/jpeg")
	header.Set("Content-Length", strconv.Itoa(buf.Len()))

	part, err := parts.CreatePart(header)
	if err != nil {
		return false, err
	}
	if _, err := part.Write(buf.GetBytes()); err != nil {
		return false, err
	}
	return true, nil
}
