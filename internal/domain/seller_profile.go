package domain

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessType string

const (
	BusinessTypeIndividual     BusinessType = "individual"
	BusinessTypeSoleProprietor BusinessType = "sole_proprietor"
	BusinessTypePartnership    BusinessType = "partnership"
	BusinessTypePrivateLtd     BusinessType = "private_ltd"
	BusinessTypeLLP            BusinessType = "llp"
	BusinessTypeOthers         BusinessType = "others"
)

func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeIndividual, BusinessTypeSoleProprietor, BusinessTypePartnership,
		BusinessTypePrivateLtd, BusinessTypeLLP, BusinessTypeOthers:
		return true
	}

	return false
}

var (
	PANPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	GSTINPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	IFSCPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	PincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	AadharPattern  = regexp.MustCompile(`^[0-9]{12}$`)
)

type PickupAddress struct {
	AddressLine1  string `bson:"address_line1" json:"addressLine1"`
	AddressLine2  string `bson:"address_line2" json:"addressLine2"`
	City          string `bson:"city" json:"city"`
	State         string `bson:"state" json:"state"`
	Pincode       string `bson:"pincode" json:"pincode"`
	Landmark      string `bson:"landmark" json:"landmark"`
	ContactNumber string `bson:"contact_number" json:"contactNumber"`
}

type ReturnAddress struct {
	IsSameAsPickup bool   `bson:"is_same_as_pickup" json:"isSameAsPickup"`
	AddressLine1   string `bson:"address_line1" json:"addressLine1"`
	AddressLine2   string `bson:"address_line2" json:"addressLine2"`
	City           string `bson:"city" json:"city"`
	State          string `bson:"state" json:"state"`
	Pincode        string `bson:"pincode" json:"pincode"`
}

type VerificationStatus struct {
	KYCDone          bool `bson:"kyc_done" json:"kycDone"`
	BankVerified     bool `bson:"bank_verified" json:"bankVerified"`
	BusinessVerified bool `bson:"business_verified" json:"businessVerified"`
}

type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int64   `bson:"count" json:"count"`
}

type SellerProfile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID primitive.ObjectID `bson:"user_id"`

	FullName    string `bson:"full_name"`
	PhoneNumber string `bson:"phone_number"`

	BusinessName string       `bson:"business_name"`
	BusinessType BusinessType `bson:"business_type"`
	BusinessPAN  string       `bson:"business_pan"`
	GSTIN        string       `bson:"gstin"`

	BankAccountNumber string `bson:"bank_account_number"`
	AccountHolderName string `bson:"account_holder_name"`
	IFSCCode          string `bson:"ifsc_code"`

	// Nil when the document has no pickup address at all.
	PickupAddress *PickupAddress `bson:"pickup_address,omitempty"`
	ReturnAddress ReturnAddress  `bson:"return_address"`

	AadharNumber     string `bson:"aadhar_number"`
	MSMERegistration string `bson:"msme_registration"`

	// Object store handles, never file system paths.
	BusinessRegCertificate string `bson:"business_reg_certificate"`
	CancelledCheque        string `bson:"cancelled_cheque"`

	ProfileStatus      ProfileStatus      `bson:"profile_status"`
	VerificationStatus VerificationStatus `bson:"verification_status"`

	RejectionReason string     `bson:"rejection_reason"`
	ApprovedBy      string     `bson:"approved_by,omitempty"`
	ApprovedAt      *time.Time `bson:"approved_at,omitempty"`

	TotalProducts int64  `bson:"total_products"`
	TotalSales    int64  `bson:"total_sales"`
	Rating        Rating `bson:"rating"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewSellerProfile returns the defaults a first submission starts from.
func NewSellerProfile(userID primitive.ObjectID) SellerProfile {
	return SellerProfile{
		UserID:        userID,
		ProfileStatus: ProfileStatusIncomplete,
		ReturnAddress: ReturnAddress{IsSameAsPickup: true},
	}
}

func (p *SellerProfile) FullPickupAddress() string {
	if p.PickupAddress == nil {
		return ""
	}

	addr := p.PickupAddress
	var sb strings.Builder
	sb.WriteString(addr.AddressLine1)
	if addr.AddressLine2 != "" {
		sb.WriteString(", " + addr.AddressLine2)
	}
	sb.WriteString(", " + addr.City + ", " + addr.State + " - " + addr.Pincode)

	return sb.String()
}
