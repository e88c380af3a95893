package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	MaxImagesPerUpload = 10
	MaxImageSizeBytes  = 10 << 20
	uploadFolder       = "realSilver/products"
)

// Typed upload violations, distinct from generic upload failures.
var (
	ErrNoImages      = errors.New("at least one image is required")
	ErrTooManyImages = fmt.Errorf("cannot upload more than %d images", MaxImagesPerUpload)
	ErrImageTooLarge = errors.New("file size exceeds 10MB limit")
	ErrBadImageType  = errors.New("invalid file type, only JPEG, PNG and WebP are allowed")
)

var allowedImageMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaStore wraps the Cloudinary client used for product image hosting.
type MediaStore struct {
	cld *cloudinary.Cloudinary
}

func NewMediaStore(cloudName, apiKey, apiSecret string) (*MediaStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &MediaStore{cld: cld}, nil
}

// ValidateImages checks count, per-file size and sniffed content type before
// anything is sent to the media store.
func ValidateImages(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return ErrNoImages
	}
	if len(files) > MaxImagesPerUpload {
		return ErrTooManyImages
	}
	for _, fh := range files {
		if fh.Size > MaxImageSizeBytes {
			return ErrImageTooLarge
		}
		if err := sniffImageType(fh); err != nil {
			return err
		}
	}
	return nil
}

func sniffImageType(fh *multipart.FileHeader) error {
	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	buffer := make([]byte, 512)
	n, err := f.Read(buffer)
	if err != nil && n == 0 {
		return fmt.Errorf("read file header: %w", err)
	}

	detected := strings.ToLower(http.DetectContentType(buffer[:n]))
	if !allowedImageMimes[detected] {
		return ErrBadImageType
	}
	return nil
}

// UploadImages validates the batch and uploads each file, returning the
// secure URLs in input order. Files are stored untransformed under the
// product folder with generated public IDs.
func (s *MediaStore) UploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if err := ValidateImages(files); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}

		res, err := s.cld.Upload.Upload(ctx, f, uploader.UploadParams{
			Folder:   uploadFolder,
			PublicID: uuid.NewString(),
		})
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		urls = append(urls, res.SecureURL)
	}

	return urls, nil
}

// DestroyImages removes the given URLs from the media store, all deletions
// running concurrently. Cleanup is best effort: failures are logged and the
// aggregate result is reported as a boolean, never as a fatal error.
func (s *MediaStore) DestroyImages(ctx context.Context, urls []string) bool {
	// a plain group so one failed destroy does not cancel the others
	var g errgroup.Group
	for _, raw := range urls {
		publicID, err := PublicIDFromURL(raw)
		if err != nil {
			log.Printf("media: skipping %q: %v", raw, err)
			continue
		}
		g.Go(func() error {
			_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
			if err != nil {
				return fmt.Errorf("destroy %s: %w", publicID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("media: image cleanup incomplete: %v", err)
		return false
	}
	return true
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// PublicIDFromURL derives the Cloudinary public ID from a delivery URL:
// everything after the upload version segment, extension stripped. URLs
// without a version segment fall back to the last two path segments.
func PublicIDFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid url: %w", err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	start := -1
	for i, seg := range segments {
		if versionSegment.MatchString(seg) {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(segments) {
		if len(segments) < 2 {
			return "", fmt.Errorf("not a media url: %q", raw)
		}
		start = len(segments) - 2
	}

	publicID := strings.Join(segments[start:], "/")
	if dot := strings.LastIndex(publicID, "."); dot > strings.LastIndex(publicID, "/") {
		publicID = publicID[:dot]
	}
	if publicID == "" {
		return "", fmt.Errorf("not a media url: %q", raw)
	}
	return publicID, nil
}

// MergeImageURLs combines the stored URLs with removals and additions while
// preserving order and dropping duplicates.
func MergeImageURLs(oldURLs, toRemove, toAdd []string) []string {
	removeSet := make(map[string]struct{}, len(toRemove))
	for _, u := range toRemove {
		removeSet[u] = struct{}{}
	}

	final := make([]string, 0, len(oldURLs)+len(toAdd))
	exists := make(map[string]struct{})

	for _, u := range oldURLs {
		if _, shouldRemove := removeSet[u]; !shouldRemove {
			final = append(final, u)
			exists[u] = struct{}{}
		}
	}
	for _, u := range toAdd {
		if _, already := exists[u]; !already {
			final = append(final, u)
			exists[u] = struct{}{}
		}
	}
	return final
}
