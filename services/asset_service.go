// file: services/asset_service.go
package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadResult 资源存储返回的持久 URL 与 public id
type UploadResult struct {
	URL      string
	PublicID string
}

// AssetUploader 资源存储协作方。缴费截图与同意书走同一套上传通道，
// key 由队伍 ID 推导，重传落到同一个逻辑槽位
type AssetUploader interface {
	Upload(ctx context.Context, folder, publicID, contentType string, data []byte) (*UploadResult, error)
}

// CloudinaryUploader 基于 Cloudinary Upload API 的实现
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, folder, publicID, contentType string, data []byte) (*UploadResult, error) {
	// Upload API 接受 data URI 形式的文件内容
	dataURI := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	resp, err := u.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		Overwrite:    api.Bool(true),
		ResourceType: "auto",
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}
