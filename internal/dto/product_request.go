package dto

import (
	"io"
	"strings"
)

// ProductRequest is the multipart create form. Numbers arrive as text.
type ProductRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Price       string `form:"price" json:"price" validate:"required,numeric"`
	Category    string `form:"category" json:"category" validate:"required"`
	Stock       string `form:"stock" json:"stock" validate:"omitempty,numeric"`
	Tags        string `form:"tags" json:"tags"`
}

// ProductUpdateRequest carries only the fields the owner wants changed;
// empty means keep the stored value.
type ProductUpdateRequest struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	Price       string `form:"price" json:"price" validate:"omitempty,numeric"`
	Category    string `form:"category" json:"category"`
	Stock       string `form:"stock" json:"stock" validate:"omitempty,numeric"`
	Tags        string `form:"tags" json:"tags"`
	Status      string `form:"status" json:"status" validate:"omitempty,oneof=active inactive sold"`
}

// FileUpload is one uploaded multipart file, already opened by the controller.
type FileUpload struct {
	Field       string
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// SplitTags turns "a, b ,c" into [a b c], dropping empty entries.
func SplitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}
