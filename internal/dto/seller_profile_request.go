package dto

import "strings"

// SellerProfileRequest is the flattened multi-step onboarding form. Only
// formats are checked here; missing fields only lower the completion score.
type SellerProfileRequest struct {
	FullName    string `form:"fullName" json:"fullName"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`

	BusinessName string `form:"businessName" json:"businessName"`
	BusinessType string `form:"businessType" json:"businessType" validate:"omitempty,businesstype"`
	BusinessPAN  string `form:"businessPAN" json:"businessPAN" validate:"omitempty,pan"`
	GSTIN        string `form:"gstin" json:"gstin" validate:"omitempty,gstin"`

	BankAccountNumber string `form:"bankAccountNumber" json:"bankAccountNumber"`
	AccountHolderName string `form:"accountHolderName" json:"accountHolderName"`
	IFSCCode          string `form:"ifscCode" json:"ifscCode" validate:"omitempty,ifsc"`

	AddressLine1        string `form:"addressLine1" json:"addressLine1"`
	AddressLine2        string `form:"addressLine2" json:"addressLine2"`
	City                string `form:"city" json:"city"`
	State               string `form:"state" json:"state"`
	Pincode             string `form:"pincode" json:"pincode" validate:"omitempty,pincode"`
	Landmark            string `form:"landmark" json:"landmark"`
	PickupContactNumber string `form:"pickupContactNumber" json:"pickupContactNumber"`

	ReturnAddressSame   string `form:"returnAddressSame" json:"returnAddressSame"`
	ReturnAddressLine1  string `form:"returnAddressLine1" json:"returnAddressLine1"`
	ReturnAddressLine2  string `form:"returnAddressLine2" json:"returnAddressLine2"`
	ReturnCity          string `form:"returnCity" json:"returnCity"`
	ReturnState         string `form:"returnState" json:"returnState"`
	ReturnPincode       string `form:"returnPincode" json:"returnPincode" validate:"omitempty,pincode"`

	AadharNumber     string `form:"aadharNumber" json:"aadharNumber" validate:"omitempty,aadhar"`
	MSMERegistration string `form:"msmeRegistration" json:"msmeRegistration"`
}

// Normalize trims every field and upper-cases the tax and bank codes.
func (r *SellerProfileRequest) Normalize() {
	for _, field := range []*string{
		&r.FullName, &r.PhoneNumber, &r.BusinessName, &r.BusinessType,
		&r.BankAccountNumber, &r.AccountHolderName,
		&r.AddressLine1, &r.AddressLine2, &r.City, &r.State, &r.Pincode, &r.Landmark, &r.PickupContactNumber,
		&r.ReturnAddressSame, &r.ReturnAddressLine1, &r.ReturnAddressLine2, &r.ReturnCity, &r.ReturnState, &r.ReturnPincode,
		&r.AadharNumber, &r.MSMERegistration,
	} {
		*field = strings.TrimSpace(*field)
	}

	r.BusinessPAN = strings.ToUpper(strings.TrimSpace(r.BusinessPAN))
	r.GSTIN = strings.ToUpper(strings.TrimSpace(r.GSTIN))
	r.IFSCCode = strings.ToUpper(strings.TrimSpace(r.IFSCCode))
}

// ReturnIsSameAsPickup defaults to true; only an explicit "false" opts out.
func (r *SellerProfileRequest) ReturnIsSameAsPickup() bool {
	return r.ReturnAddressSame != "false"
}

type AdminDecisionRequest struct {
	Reason string `json:"reason" form:"reason"`
}
