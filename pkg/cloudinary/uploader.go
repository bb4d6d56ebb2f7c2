package cloudinary

import (
	"bytes"
	"context"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func boolPtr(b bool) *bool {
	return &b
}

// UploadBytes stores the image under folder/filename, replacing any previous
// upload with the same id, and crops it to a 128x128 square on ingest.
func (u *CloudinaryUploader) UploadBytes(
	ctx context.Context,
	folder string,
	filename string,
	b []byte,
) (string, error) {
	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(b),
		uploader.UploadParams{
			Folder:         folder,
			PublicID:       filename,
			ResourceType:   "image",
			Overwrite:      boolPtr(true),
			Transformation: "c_fill,w_128,h_128",
		},
	)
	if err != nil {
		return "", err
	}

	return res.SecureURL, nil
}
