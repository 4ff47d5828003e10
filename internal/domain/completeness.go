package domain

import (
	"math"
	"strings"
)

// RequiredField is one entry of the onboarding checklist. Value reports the
// field's string form and false when an intermediate object is missing.
type RequiredField struct {
	Path  string
	Value func(p *SellerProfile) (string, bool)
}

func topLevel(get func(p *SellerProfile) string) func(p *SellerProfile) (string, bool) {
	return func(p *SellerProfile) (string, bool) {
		return get(p), true
	}
}

func pickup(get func(a *PickupAddress) string) func(p *SellerProfile) (string, bool) {
	return func(p *SellerProfile) (string, bool) {
		if p.PickupAddress == nil {
			return "", false
		}
		return get(p.PickupAddress), true
	}
}

// RequiredProfileFields is the single source of truth for both
// CompletionPercentage and IsProfileComplete.
var RequiredProfileFields = []RequiredField{
	{"fullName", topLevel(func(p *SellerProfile) string { return p.FullName })},
	{"phoneNumber", topLevel(func(p *SellerProfile) string { return p.PhoneNumber })},
	{"businessName", topLevel(func(p *SellerProfile) string { return p.BusinessName })},
	{"businessType", topLevel(func(p *SellerProfile) string { return string(p.BusinessType) })},
	{"businessPAN", topLevel(func(p *SellerProfile) string { return p.BusinessPAN })},
	{"bankAccountNumber", topLevel(func(p *SellerProfile) string { return p.BankAccountNumber })},
	{"accountHolderName", topLevel(func(p *SellerProfile) string { return p.AccountHolderName })},
	{"ifscCode", topLevel(func(p *SellerProfile) string { return p.IFSCCode })},
	{"pickupAddress.addressLine1", pickup(func(a *PickupAddress) string { return a.AddressLine1 })},
	{"pickupAddress.city", pickup(func(a *PickupAddress) string { return a.City })},
	{"pickupAddress.state", pickup(func(a *PickupAddress) string { return a.State })},
	{"pickupAddress.pincode", pickup(func(a *PickupAddress) string { return a.Pincode })},
}

func (f RequiredField) IsCompleted(p *SellerProfile) bool {
	value, ok := f.Value(p)
	return ok && strings.TrimSpace(value) != ""
}

func (p *SellerProfile) completedFieldCount() int {
	completed := 0
	for _, field := range RequiredProfileFields {
		if field.IsCompleted(p) {
			completed++
		}
	}

	return completed
}

// MissingFields lists the dotted paths still to be filled, in checklist order.
func (p *SellerProfile) MissingFields() []string {
	var missing []string
	for _, field := range RequiredProfileFields {
		if !field.IsCompleted(p) {
			missing = append(missing, field.Path)
		}
	}

	return missing
}

func (p *SellerProfile) CompletionPercentage() int {
	completed := p.completedFieldCount()
	return int(math.Round(float64(completed) / float64(len(RequiredProfileFields)) * 100))
}

func (p *SellerProfile) IsProfileComplete() bool {
	return p.completedFieldCount() == len(RequiredProfileFields)
}
