package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/oklog/ulid/v2"
)

// Storage keeps uploaded files under opaque keys. Keys are what the domain
// records; URL turns one into something a client can fetch.
type Storage interface {
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

func NewStorage(ctx context.Context, conf config.StorageConfig) (Storage, error) {
	switch conf.Type {
	case "", "local":
		return NewLocalStorage(conf)
	case "s3":
		return NewS3Storage(ctx, conf)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", conf.Type)
	}
}

var extensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// NewObjectKey builds prefix/<ulid><ext>. Client file names never reach the key.
func NewObjectKey(prefix, contentType string) string {
	return fmt.Sprintf("%s/%s%s", strings.Trim(prefix, "/"), strings.ToLower(ulid.Make().String()), extensions[contentType])
}

// Sniff detects the content type from the leading bytes and returns a reader
// that still yields the whole stream.
func Sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	return contentType, io.MultiReader(bytes.NewReader(head), r), nil
}
