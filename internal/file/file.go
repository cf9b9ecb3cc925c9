package file

import (
	"context"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// FileUploader pushes admin-uploaded images (profile pictures, signatures,
// event banners) to Cloudinary and hands back the hosted URL, which is what
// the database stores.
type FileUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
}

func New(cloudName, apiKey, apiSecret, folder string) *FileUploader {
	return &FileUploader{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
	}
}

func (f *FileUploader) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	cld, err := cloudinary.NewFromParams(f.cloudName, f.apiKey, f.apiSecret)
	if err != nil {
		return "", err
	}

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   f.folder,
		PublicID: filename,
	})
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
