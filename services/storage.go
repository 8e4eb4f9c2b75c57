package services

import (
	"bytes"
	"context"
	"time"

	"hrm/config"
	apperrors "hrm/errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/redis/go-redis/v9"
)

// Storage là kho file của hệ thống: giấy tờ nhân viên, biên nhận, hóa đơn,
// phiếu lương. Đường dẫn dùng prefix để xóa theo nhóm.
type Storage interface {
	Save(ctx context.Context, path string, data []byte, contentType string) error
	Exists(ctx context.Context, path string) (bool, error)
	SignedReadURL(ctx context.Context, path string, ttl time.Duration) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// CloudinaryStorage implement Storage trên Cloudinary, cache URL đã ký
// trong Redis theo TTL.
type CloudinaryStorage struct {
	cld   *cloudinary.Cloudinary
	redis *redis.Client
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary, redisCli *redis.Client) *CloudinaryStorage {
	return &CloudinaryStorage{
		cld:   cld,
		redis: redisCli,
	}
}

// Save lưu file lên Cloudinary, ghi đè nếu đã tồn tại.
func (s *CloudinaryStorage) Save(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     path,
		ResourceType: "auto",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi lưu file "+path, err)
	}
	return nil
}

// Exists kiểm tra file có tồn tại trên Cloudinary không.
func (s *CloudinaryStorage) Exists(ctx context.Context, path string) (bool, error) {
	res, err := s.cld.Admin.Asset(ctx, admin.AssetParams{PublicID: path})
	if err != nil {
		return false, apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi kiểm tra file "+path, err)
	}
	if res.Error.Message != "" {
		// Cloudinary trả lỗi trong payload khi asset không tồn tại
		return false, nil
	}
	return true, nil
}

// SignedReadURL trả về URL đọc có chữ ký, "" nếu file không tồn tại.
// URL được cache trong Redis với cùng TTL để tránh gọi Cloudinary lặp lại.
func (s *CloudinaryStorage) SignedReadURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	cacheKey := "signedurl:" + path
	if s.redis != nil {
		var cached string
		if err := GetFromRedis(ctx, s.redis, cacheKey, &cached); err == nil && cached != "" {
			return cached, nil
		}
	}

	exists, err := s.Exists(ctx, path)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", nil
	}

	asset, err := s.cld.Image(path)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi tạo URL cho file "+path, err)
	}
	asset.Config.URL.SignURL = true
	url, err := asset.String()
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi ký URL cho file "+path, err)
	}

	if s.redis != nil {
		_ = SetToRedis(ctx, s.redis, cacheKey, url, ttl)
	}
	return url, nil
}

// DeleteByPrefix xóa mọi file dưới prefix; prefix trống asset vẫn là thành công.
func (s *CloudinaryStorage) DeleteByPrefix(ctx context.Context, prefix string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{prefix},
	})
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInternal, "Lỗi khi xóa file theo prefix "+prefix, err)
	}
	return nil
}

// NewDefaultStorage tạo storage từ các handle toàn cục trong config.
func NewDefaultStorage() *CloudinaryStorage {
	return NewCloudinaryStorage(config.Cloudinary, config.RedisClient)
}
