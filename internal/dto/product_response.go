package dto

import (
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
)

type SellerSummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProductResponse struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Category    string         `json:"category"`
	Stock       int64          `json:"stock"`
	Images      []string       `json:"images"`
	Tags        []string       `json:"tags"`
	Status      string         `json:"status"`
	Seller      *SellerSummary `json:"seller"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}

// NewProductResponse projects a stored product. seller may be nil when the
// owning account no longer exists.
func NewProductResponse(p domain.Product, seller *domain.User) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Images:      p.Images,
		Tags:        p.Tags,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	if seller != nil {
		resp.Seller = &SellerSummary{
			ID:    seller.ID.Hex(),
			Name:  seller.Name,
			Email: seller.Email,
		}
	}

	return resp
}
