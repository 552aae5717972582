package handlers

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "image/gif"

	"github.com/gorilla/mux"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

// MaxImageHeight bounds the ?h= parameter of the image endpoint.
const MaxImageHeight = 2000

// FetchImageHandler loads an image from assetsDir, resizes it to the
// requested height (?h=, defaultHeight otherwise) and returns it.
func FetchImageHandler(assetsDir string, defaultHeight uint, logger *zap.Logger, w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.Error(w, "Invalid image name", http.StatusBadRequest)
		return
	}

	newHeight := defaultHeight
	if h := r.URL.Query().Get("h"); h != "" {
		v, err := strconv.ParseUint(h, 10, 32)
		if err != nil || v == 0 || v > MaxImageHeight {
			http.Error(w, "Invalid height parameter", http.StatusBadRequest)
			return
		}
		newHeight = uint(v)
	}

	f, err := os.Open(filepath.Join(assetsDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to open image", http.StatusInternalServerError)
		logger.Error("failed to open image", zap.String("name", name), zap.Error(err))
		return
	}
	defer f.Close()

	// Decode the image
	img, format, err := image.Decode(f)
	if err != nil {
		http.Error(w, "Failed to decode image", http.StatusUnsupportedMediaType)
		return
	}

	// Calculate new width while maintaining aspect ratio
	originalBounds := img.Bounds()
	if originalBounds.Dy() == 0 {
		http.Error(w, "Failed to decode image", http.StatusUnsupportedMediaType)
		return
	}
	aspectRatio := float64(originalBounds.Dx()) / float64(originalBounds.Dy())
	newWidth := uint(float64(newHeight) * aspectRatio)

	resizedImg := resize.Resize(newWidth, newHeight, img, resize.Lanczos3)

	// Encode the resized image and write it to the response
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		w.Header().Set("Content-Type", "image/jpeg")
		err = jpeg.Encode(w, resizedImg, nil)
	default:
		// gif and webp are re-encoded as png
		w.Header().Set("Content-Type", "image/png")
		err = png.Encode(w, resizedImg)
	}

	if err != nil {
		logger.Debug("failed to encode image", zap.String("name", name), zap.Error(err))
	}
}
