package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/Vijaykarthik1/tnstc-leave/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxPhotoSide is the longest edge, in pixels, of a stored profile photo.
const MaxPhotoSide = 512

// MaxPhotoPixels bounds the decoded size of an upload, checked from the
// image header before any pixels are allocated.
const MaxPhotoPixels = 40_000_000

const profilePhotoDir = "profile-photos"

var (
	ErrUnsupportedImage = errors.New("invalid file type: only jpg, jpeg, png allowed")
	ErrCorruptImage     = errors.New("file is not a readable image")
	ErrImageTooLarge    = errors.New("image dimensions are too large")
)

type FileService interface {
	// UploadProfilePhoto stores a downscaled copy of the image and returns its public URL.
	UploadProfilePhoto(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// RemoveProfilePhoto deletes a photo previously stored by UploadProfilePhoto.
	// URLs pointing elsewhere are ignored.
	RemoveProfilePhoto(ctx context.Context, photoURL string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadProfilePhoto uploads a user's profile photo
func (s *fileServiceImpl) UploadProfilePhoto(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", ErrUnsupportedImage
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPhotoPixels {
		return "", fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptImage, err)
	}

	img = fitWithin(img, MaxPhotoSide)

	// Re-encode in the decoded format; the extension is only a hint.
	buf := new(bytes.Buffer)
	contentType := "image/jpeg"
	outExt := ".jpg"
	if format == "png" {
		contentType = "image/png"
		outExt = ".png"
		err = png.Encode(buf, img)
	} else {
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	key := path.Join(profilePhotoDir, userID, uuid.New().String()+outExt)
	uploadedPath, err := s.storage.Upload(ctx, buf, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile photo: %w", err)
	}

	return s.storage.GetURL(ctx, uploadedPath)
}

func (s *fileServiceImpl) RemoveProfilePhoto(ctx context.Context, photoURL string) error {
	key, ok := s.storage.KeyFromURL(photoURL)
	if !ok || !strings.HasPrefix(key, profilePhotoDir+"/") {
		return nil
	}
	return s.storage.Delete(ctx, key)
}

// fitWithin scales src down so neither side exceeds max, keeping the aspect ratio.
func fitWithin(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}

	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
