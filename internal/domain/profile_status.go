package domain

import (
	"strings"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
)

type ProfileStatus string

const (
	ProfileStatusIncomplete ProfileStatus = "incomplete"
	ProfileStatusPending    ProfileStatus = "pending"
	ProfileStatusApproved   ProfileStatus = "approved"
	ProfileStatusRejected   ProfileStatus = "rejected"
	ProfileStatusSuspended  ProfileStatus = "suspended"

	// ProfileStatusNone is reported by status queries for users without a profile.
	ProfileStatusNone ProfileStatus = "no_profile"
)

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusIncomplete, ProfileStatusPending, ProfileStatusApproved,
		ProfileStatusRejected, ProfileStatusSuspended:
		return true
	}

	return false
}

// ApplySubmission runs after the submitted form has been merged into p. A
// complete profile always goes (back) to pending review; an incomplete one
// keeps whatever status it had. It reports whether the status changed.
func (p *SellerProfile) ApplySubmission() bool {
	previous := p.ProfileStatus
	if previous == "" {
		p.ProfileStatus = ProfileStatusIncomplete
	}

	if p.IsProfileComplete() {
		p.ProfileStatus = ProfileStatusPending
		p.RejectionReason = ""
	}

	return p.ProfileStatus != previous
}

func (p *SellerProfile) Approve(approvedBy string, at time.Time) error {
	if p.ProfileStatus != ProfileStatusPending {
		return errs.ErrInvalidTransition
	}

	p.ProfileStatus = ProfileStatusApproved
	p.ApprovedBy = approvedBy
	p.ApprovedAt = &at
	p.RejectionReason = ""

	return nil
}

func (p *SellerProfile) Reject(reason string) error {
	if p.ProfileStatus != ProfileStatusPending {
		return errs.ErrInvalidTransition
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValidationError("reason", "a rejection reason is required")
	}

	p.ProfileStatus = ProfileStatusRejected
	p.RejectionReason = reason

	return nil
}

func (p *SellerProfile) Suspend() error {
	if p.ProfileStatus != ProfileStatusApproved {
		return errs.ErrInvalidTransition
	}

	p.ProfileStatus = ProfileStatusSuspended

	return nil
}

func (p *SellerProfile) CanSell() bool {
	return p.ProfileStatus == ProfileStatusApproved
}
