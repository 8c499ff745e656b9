package storage

import (
	"os"
	"strings"
	"time"

	"gallery/db"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

const (
	LocationPhotos   = "photos"
	LocationProfiles = "profile_images"
)

type Bucket struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Name        string `gorm:"type:varchar(200)"` // S3 bucket name, or just a label for disk
	StorageType StorageType
	Path        string // Path on a drive or a key prefix in a S3 bucket
	Region      string `gorm:"type:varchar(20)"`
	Endpoint    string `gorm:"type:varchar(300)"` // for S3-compatible services
	S3Key       string `gorm:"type:varchar(200)"`
	S3Secret    string `gorm:"type:varchar(200)"`
}

func (b *Bucket) Create() error {
	err := db.Instance.Create(b).Error
	if err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		// Pre-create locations on disk
		if err = os.MkdirAll(b.Path+"/"+LocationPhotos, 0777); err != nil {
			return err
		}
		if err = os.MkdirAll(b.Path+"/"+LocationProfiles, 0777); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bucket) IsS3() bool {
	return b.StorageType == StorageTypeS3
}

func (b *Bucket) CreateSVC() *s3.S3 {
	creds := credentials.NewStaticCredentials(b.S3Key, b.S3Secret, "")
	cfg := aws.NewConfig().WithRegion(b.Region).WithCredentials(creds)
	if b.Endpoint != "" {
		cfg = cfg.WithEndpoint(b.Endpoint).WithS3ForcePathStyle(true)
	}
	return s3.New(session.Must(session.NewSession()), cfg)
}

// GetRemotePath prepends the bucket's key prefix (if any)
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}

func (b *Bucket) CreateS3DownloadURI(path string, validFor time.Duration) string {
	req, _ := b.CreateSVC().GetObjectRequest(&s3.GetObjectInput{
		Bucket: &b.Name,
		Key:    aws.String(b.GetRemotePath(path)),
	})
	url, err := req.Presign(validFor)
	if err != nil {
		return ""
	}
	return url
}
