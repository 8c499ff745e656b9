package storage

import (
	"io"
	"log"
	"net/http"

	"gallery/config"
	"gallery/db"
)

// StorageAPI is what the rest of the application sees: save a blob under a
// path, get it back or serve it, delete it, and produce a URL a browser can
// fetch it from.
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	URLFor(path string) string
	GetBucket() *Bucket
}

var (
	cachedStorage []StorageAPI
)

func Init() {
	db.Instance.AutoMigrate(&Bucket{})

	var buckets []Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		panic(err)
	}
	if len(buckets) == 0 && config.DEFAULT_BUCKET_DIR != "" {
		b := Bucket{
			Name:        "local",
			StorageType: StorageTypeFile,
			Path:        config.DEFAULT_BUCKET_DIR,
		}
		if err := b.Create(); err != nil {
			panic(err)
		}
		buckets = append(buckets, b)
	}
	log.Printf("Storage Buckets found: %d\n", len(buckets))

	cachedStorage = []StorageAPI{}
	for i := range buckets {
		cachedStorage = append(cachedStorage, NewStorage(&buckets[i]))
	}
}

func NewStorage(bucket *Bucket) StorageAPI {
	if bucket.StorageType == StorageTypeS3 {
		return NewS3Storage(bucket)
	}
	return NewDiskStorage(bucket)
}

func StorageFrom(bucket *Bucket) StorageAPI {
	for _, s := range cachedStorage {
		if s.GetBucket().ID == bucket.ID {
			return s
		}
	}
	return nil
}

func GetDefaultStorage() StorageAPI {
	if len(cachedStorage) == 0 {
		panic("no storage available")
	}
	return cachedStorage[0]
}

// PublicURL resolves a storage reference to something a client can load.
// An empty reference yields the configured placeholder image.
func PublicURL(path string) string {
	if path == "" {
		return config.PLACEHOLDER_IMAGE
	}
	return GetDefaultStorage().URLFor(path)
}

// Remove deletes a blob from the default storage, best-effort. Failures are
// logged and swallowed - a leaked blob never blocks deleting the record that
// referenced it.
func Remove(path string) {
	if path == "" {
		return
	}
	if err := GetDefaultStorage().Delete(path); err != nil {
		log.Printf("Blob %s: delete error: %s", path, err)
	}
}
