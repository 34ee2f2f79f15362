package media_storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"

	"github.com/JanviSingh1712/portfolio/pkg/logger"
)

const deliveryTransformation = "f_auto,q_auto"

// CloudinaryAdapter uploads site images and resolves image references to
// optimised delivery URLs in the configured folder.
type CloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger logger.Logger
}

func NewCloudinaryAdapter(cloudName, apiKey, apiSecret, folder string, log logger.Logger) (*CloudinaryAdapter, error) {
	if cloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	cld.Config.URL.Analytics = false

	log.Info("Connect Cloudinary successfully.", zap.String("folder", folder))
	return &CloudinaryAdapter{cld: cld, folder: folder, logger: log}, nil
}

func (a *CloudinaryAdapter) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	result, err := a.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected upload: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// Resolve maps a site-relative reference such as "/human.avif" to the
// delivery URL of the asset uploaded for it. Absolute URLs pass through.
func (a *CloudinaryAdapter) Resolve(ref string) string {
	if ref == "" || IsAbsoluteURL(ref) {
		return ref
	}

	img, err := a.cld.Image(PublicID(a.folder, ref))
	if err != nil {
		a.logger.Warn("Cannot build cloudinary asset", zap.String("ref", ref), zap.Error(err))
		return ref
	}
	img.Transformation = deliveryTransformation

	url, err := img.String()
	if err != nil {
		a.logger.Warn("Cannot build cloudinary url", zap.String("ref", ref), zap.Error(err))
		return ref
	}
	return url
}

// AssetName is the public id of ref without its folder.
func AssetName(ref string) string {
	base := path.Base("/" + strings.TrimLeft(ref, "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

func PublicID(folder, ref string) string {
	name := AssetName(ref)
	if folder == "" {
		return name
	}
	return strings.Trim(folder, "/") + "/" + name
}

func IsAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "//")
}
