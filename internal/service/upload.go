package service

import (
	"context"

	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/storage"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/rs/zerolog/log"
)

type uploadPolicy struct {
	maxFiles int
	maxSize  int64
	allowed  map[string]bool
}

var (
	imageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
	}
	documentTypes = map[string]bool{
		"image/jpeg":      true,
		"image/png":       true,
		"application/pdf": true,
	}
)

type storedUpload struct {
	field string
	key   string
}

// storeUploads checks every file against policy before writing any of them.
// If a write fails the files already written are removed again.
func storeUploads(ctx context.Context, store ObjectStore, prefix string, files []dto.FileUpload, policy uploadPolicy) (stored []storedUpload, err error) {
	if policy.maxFiles > 0 && len(files) > policy.maxFiles {
		return nil, errs.ErrTooManyFiles
	}

	type sniffed struct {
		file        dto.FileUpload
		contentType string
	}
	checked := make([]sniffed, 0, len(files))

	for _, file := range files {
		if file.Size > policy.maxSize {
			return nil, errs.ErrFileTooLarge
		}

		contentType, reader, err := storage.Sniff(file.Reader)
		if err != nil {
			return nil, err
		}
		if !policy.allowed[contentType] {
			return nil, errs.ErrUnsupportedFileType
		}

		file.Reader = reader
		checked = append(checked, sniffed{file: file, contentType: contentType})
	}

	for _, item := range checked {
		key := storage.NewObjectKey(prefix, item.contentType)
		if err = store.Save(ctx, key, item.file.Reader, item.contentType); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "storeUploads").Msg("")
			removeUploads(ctx, store, keysOf(stored))
			return nil, err
		}

		stored = append(stored, storedUpload{field: item.file.Field, key: key})
	}

	return stored, nil
}

// removeUploads deletes stored objects, logging failures only.
func removeUploads(ctx context.Context, store ObjectStore, keys []string) {
	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("component", "removeUploads").Str("key", key).Msg("")
		}
	}
}

func keysOf(uploads []storedUpload) []string {
	keys := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		keys = append(keys, upload.key)
	}

	return keys
}
