// file: internals/helpers/image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadBaseDir = "uploads"
	maxImageWidth = 1600
	webpQuality   = 80
)

// SaveImageAsWebp membaca file upload, resize kalau terlalu lebar, encode ke
// webp, lalu simpan di uploads/<folder>/. Mengembalikan path publik relatif.
func SaveImageAsWebp(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("format gambar tidak dikenali: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	dir := filepath.Join(uploadBaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := GenerateUniqueFilename()
	fullPath := filepath.Join(dir, filename)
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan gambar: %w", err)
	}

	return "/" + filepath.ToSlash(fullPath), nil
}

// GenerateUniqueFilename: <timestamp>-<uuid>.webp, nama asli tidak dipakai.
func GenerateUniqueFilename() string {
	return fmt.Sprintf("%d-%s.webp", time.Now().Unix(), uuid.NewString())
}

// RemoveUploadedFile menghapus file hasil upload (dipanggil saat ganti foto).
func RemoveUploadedFile(publicPath string) {
	p := strings.TrimPrefix(publicPath, "/")
	if !strings.HasPrefix(p, uploadBaseDir+"/") {
		return
	}
	_ = os.Remove(p)
}
