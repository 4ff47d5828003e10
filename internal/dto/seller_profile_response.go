package dto

import (
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
)

type SellerProfileResponse struct {
	ID     string `json:"_id"`
	UserID string `json:"user"`

	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`

	BusinessName string `json:"businessName"`
	BusinessType string `json:"businessType"`
	BusinessPAN  string `json:"businessPAN"`
	GSTIN        string `json:"gstin"`

	BankAccountNumber string `json:"bankAccountNumber"`
	AccountHolderName string `json:"accountHolderName"`
	IFSCCode          string `json:"ifscCode"`

	PickupAddress     domain.PickupAddress `json:"pickupAddress"`
	FullPickupAddress string               `json:"fullPickupAddress"`
	ReturnAddress     domain.ReturnAddress `json:"returnAddress"`

	AadharNumber     string `json:"aadharNumber"`
	MSMERegistration string `json:"msmeRegistration"`

	BusinessRegCertificate string `json:"businessRegCertificate"`
	CancelledCheque        string `json:"cancelledCheque"`

	ProfileStatus      string                    `json:"profileStatus"`
	VerificationStatus domain.VerificationStatus `json:"verificationStatus"`
	RejectionReason    string                    `json:"rejectionReason"`
	ApprovedBy         string                    `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time                `json:"approvedAt,omitempty"`

	TotalProducts int64         `json:"totalProducts"`
	TotalSales    int64         `json:"totalSales"`
	Rating        domain.Rating `json:"rating"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SellerProfileEnvelope answers GET and POST /users/seller-profile. Profile
// is null when the seller has not submitted anything yet.
type SellerProfileEnvelope struct {
	Message              string                 `json:"message,omitempty"`
	Profile              *SellerProfileResponse `json:"profile"`
	CompletionPercentage *int                   `json:"completionPercentage,omitempty"`
	IsComplete           *bool                  `json:"isComplete,omitempty"`
	MissingFields        []string               `json:"missingFields,omitempty"`
}

type SellerStatusResponse struct {
	HasProfile           bool                       `json:"hasProfile"`
	Status               string                     `json:"status"`
	Message              string                     `json:"message,omitempty"`
	CompletionPercentage *int                       `json:"completionPercentage,omitempty"`
	IsComplete           *bool                      `json:"isComplete,omitempty"`
	VerificationStatus   *domain.VerificationStatus `json:"verificationStatus,omitempty"`
	RejectionReason      *string                    `json:"rejectionReason,omitempty"`
	CanSell              bool                       `json:"canSell"`
}

func NewSellerProfileResponse(p domain.SellerProfile) SellerProfileResponse {
	resp := SellerProfileResponse{
		ID:                     p.ID.Hex(),
		UserID:                 p.UserID.Hex(),
		FullName:               p.FullName,
		PhoneNumber:            p.PhoneNumber,
		BusinessName:           p.BusinessName,
		BusinessType:           string(p.BusinessType),
		BusinessPAN:            p.BusinessPAN,
		GSTIN:                  p.GSTIN,
		BankAccountNumber:      p.BankAccountNumber,
		AccountHolderName:      p.AccountHolderName,
		IFSCCode:               p.IFSCCode,
		FullPickupAddress:      p.FullPickupAddress(),
		ReturnAddress:          p.ReturnAddress,
		AadharNumber:           p.AadharNumber,
		MSMERegistration:       p.MSMERegistration,
		BusinessRegCertificate: p.BusinessRegCertificate,
		CancelledCheque:        p.CancelledCheque,
		ProfileStatus:          string(p.ProfileStatus),
		VerificationStatus:     p.VerificationStatus,
		RejectionReason:        p.RejectionReason,
		ApprovedBy:             p.ApprovedBy,
		ApprovedAt:             p.ApprovedAt,
		TotalProducts:          p.TotalProducts,
		TotalSales:             p.TotalSales,
		Rating:                 p.Rating,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}

	if p.PickupAddress != nil {
		resp.PickupAddress = *p.PickupAddress
	}

	return resp
}

func NewSellerProfileEnvelope(p domain.SellerProfile, message string) SellerProfileEnvelope {
	profile := NewSellerProfileResponse(p)
	pct := p.CompletionPercentage()
	complete := p.IsProfileComplete()

	return SellerProfileEnvelope{
		Message:              message,
		Profile:              &profile,
		CompletionPercentage: &pct,
		IsComplete:           &complete,
		MissingFields:        p.MissingFields(),
	}
}

func NewSellerStatusResponse(p domain.SellerProfile) SellerStatusResponse {
	pct := p.CompletionPercentage()
	complete := p.IsProfileComplete()
	verification := p.VerificationStatus
	reason := p.RejectionReason

	return SellerStatusResponse{
		HasProfile:           true,
		Status:               string(p.ProfileStatus),
		CompletionPercentage: &pct,
		IsComplete:           &complete,
		VerificationStatus:   &verification,
		RejectionReason:      &reason,
		CanSell:              p.CanSell(),
	}
}
