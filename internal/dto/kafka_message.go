package dto

import "time"

const (
	EventProductCreated      = "product_created"
	EventProductUpdated      = "product_updated"
	EventProductDeleted      = "product_deleted"
	EventProfileStatusChange = "seller_profile_status_changed"
)

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type ProductDeleted struct {
	ID string `json:"_id"`
}

type ProfileStatusChanged struct {
	UserID          string    `json:"user_id"`
	PreviousStatus  string    `json:"previous_status"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	ChangedAt       time.Time `json:"changed_at"`
}

// ProductDocument is the shape kept in the search mirror.
type ProductDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	Images      []string  `json:"images"`
	SellerID    string    `json:"seller_id"`
	SellerName  string    `json:"seller_name"`
	SellerEmail string    `json:"seller_email"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewProductDocument(p ProductResponse) ProductDocument {
	doc := ProductDocument{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Tags:        p.Tags,
		Price:       p.Price,
		Stock:       p.Stock,
		Images:      p.Images,
		CreatedAt:   p.CreatedAt,
	}

	if p.Seller != nil {
		doc.SellerID = p.Seller.ID
		doc.SellerName = p.Seller.Name
		doc.SellerEmail = p.Seller.Email
	}

	return doc
}

// ProductSearchResponse mirrors ProductListResponse for mirror queries.
type ProductSearchResponse struct {
	Products    []ProductDocument `json:"products"`
	TotalPages  int64             `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}
