package cloudinary

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

//go:generate mockgen -source=cloudinary_service.go -destination=../mock/cloudinary/cloudinary_service_mock.go -package=mock
type Service interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewService(cloudName, apiKey, apiSecret, folder string) (Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &service{
		cld:    cld,
		folder: folder,
	}, nil
}

// UploadImage uploads a product image and returns its secure URL.
func (s *service) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         s.folder,
		PublicID:       filename,
		ResourceType:   "image",
		Transformation: "c_fill,w_800,h_1000,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return uploadResult.SecureURL, nil
}

func (s *service) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// ExtractPublicID turns a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1712/products/tee-01.jpg
// into "products/tee-01". URLs outside folder yield "".
func ExtractPublicID(rawURL, folder string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	_, rest, found := strings.Cut(u.Path, "/upload/")
	if !found {
		return ""
	}

	segments := strings.Split(rest, "/")
	// drop transformations and the version segment
	for len(segments) > 1 && (strings.Contains(segments[0], ",") || isVersion(segments[0])) {
		segments = segments[1:]
	}

	id := strings.Join(segments, "/")
	id = strings.TrimSuffix(id, path.Ext(id))
	if folder != "" && !strings.HasPrefix(id, strings.TrimSuffix(folder, "/")+"/") {
		return ""
	}
	return id
}

func isVersion(seg string) bool {
	if len(seg) < 2 || seg[0] != 'v' {
		return false
	}
	for _, r := range seg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
