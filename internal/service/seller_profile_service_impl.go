package service

import (
	"context"
	"errors"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/repository"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	sellerDocumentPrefix = "seller-documents"

	FieldBusinessRegCertificate = "businessRegCertificate"
	FieldCancelledCheque        = "cancelledCheque"

	MessageProfileSaved = "Seller profile saved successfully"
	MessageNoProfile    = "Please complete your seller profile"
)

type SellerProfileServiceImpl struct {
	profileRepo repository.SellerProfileRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	store       ObjectStore
	publisher   EventPublisher
	notifier    Notifier
	config      config.Config
	now         func() time.Time
}

func CreateSellerProfileService(profileRepo repository.SellerProfileRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository,
	store ObjectStore, publisher EventPublisher, notifier Notifier, config config.Config) SellerProfileService {
	return &SellerProfileServiceImpl{
		profileRepo: profileRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		store:       store,
		publisher:   publisher,
		notifier:    notifier,
		config:      config,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *SellerProfileServiceImpl) envelope(profile domain.SellerProfile, message string) dto.SellerProfileEnvelope {
	resp := dto.NewSellerProfileEnvelope(profile, message)
	if profile.BusinessRegCertificate != "" {
		resp.Profile.BusinessRegCertificate = s.store.URL(profile.BusinessRegCertificate)
	}
	if profile.CancelledCheque != "" {
		resp.Profile.CancelledCheque = s.store.URL(profile.CancelledCheque)
	}

	return resp
}

func (s *SellerProfileServiceImpl) GetProfile(ctx context.Context, principal domain.Principal) (resp dto.SellerProfileEnvelope, err error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, principal.ID)
	if errors.Is(err, errs.ErrProfileNotFound) {
		return dto.SellerProfileEnvelope{Message: errs.ErrProfileNotFound.Error()}, nil
	}
	if err != nil {
		return
	}

	return s.envelope(profile, ""), nil
}

func (s *SellerProfileServiceImpl) GetStatus(ctx context.Context, principal domain.Principal) (resp dto.SellerStatusResponse, err error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, principal.ID)
	if errors.Is(err, errs.ErrProfileNotFound) {
		return dto.SellerStatusResponse{
			HasProfile: false,
			Status:     string(domain.ProfileStatusNone),
			Message:    MessageNoProfile,
		}, nil
	}
	if err != nil {
		return
	}

	return dto.NewSellerStatusResponse(profile), nil
}

func (s *SellerProfileServiceImpl) SubmitProfile(ctx context.Context, principal domain.Principal, req dto.SellerProfileRequest, documents []dto.FileUpload) (resp dto.SellerProfileEnvelope, err error) {
	profile, err := s.profileRepo.GetProfileByUserID(ctx, principal.ID)
	if errors.Is(err, errs.ErrProfileNotFound) {
		profile = domain.NewSellerProfile(principal.ID)
		profile.CreatedAt = s.now()
		err = nil
	}
	if err != nil {
		return
	}

	req.Normalize()
	applyProfileForm(&profile, req)

	stored, err := storeUploads(ctx, s.store, sellerDocumentPrefix, documents, uploadPolicy{
		maxSize: s.config.UploadConfig.MaxFileSize,
		allowed: documentTypes,
	})
	if err != nil {
		return
	}

	var replaced []string
	for _, upload := range stored {
		switch upload.field {
		case FieldBusinessRegCertificate:
			replaced = append(replaced, profile.BusinessRegCertificate)
			profile.BusinessRegCertificate = upload.key
		case FieldCancelledCheque:
			replaced = append(replaced, profile.CancelledCheque)
			profile.CancelledCheque = upload.key
		}
	}

	previous := profile.ProfileStatus
	changed := profile.ApplySubmission()
	profile.UpdatedAt = s.now()

	profile, err = s.profileRepo.SaveProfile(ctx, profile)
	if err != nil {
		removeUploads(ctx, s.store, keysOf(stored))
		return
	}

	removeUploads(ctx, s.store, nonEmpty(replaced))

	if changed {
		s.statusChanged(ctx, profile, previous)
	}

	return s.envelope(profile, MessageProfileSaved), nil
}

// applyProfileForm overwrites every form-backed field. Review state,
// documents and stats are left alone.
func applyProfileForm(profile *domain.SellerProfile, req dto.SellerProfileRequest) {
	profile.FullName = req.FullName
	profile.PhoneNumber = req.PhoneNumber
	profile.BusinessName = req.BusinessName
	profile.BusinessType = domain.BusinessType(req.BusinessType)
	profile.BusinessPAN = req.BusinessPAN
	profile.GSTIN = req.GSTIN
	profile.BankAccountNumber = req.BankAccountNumber
	profile.AccountHolderName = req.AccountHolderName
	profile.IFSCCode = req.IFSCCode
	profile.AadharNumber = req.AadharNumber
	profile.MSMERegistration = req.MSMERegistration

	profile.PickupAddress = &domain.PickupAddress{
		AddressLine1:  req.AddressLine1,
		AddressLine2:  req.AddressLine2,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Landmark:      req.Landmark,
		ContactNumber: req.PickupContactNumber,
	}

	profile.ReturnAddress = domain.ReturnAddress{IsSameAsPickup: req.ReturnIsSameAsPickup()}
	if !profile.ReturnAddress.IsSameAsPickup {
		profile.ReturnAddress.AddressLine1 = req.ReturnAddressLine1
		profile.ReturnAddress.AddressLine2 = req.ReturnAddressLine2
		profile.ReturnAddress.City = req.ReturnCity
		profile.ReturnAddress.State = req.ReturnState
		profile.ReturnAddress.Pincode = req.ReturnPincode
	}
}

func nonEmpty(keys []string) []string {
	out := keys[:0]
	for _, key := range keys {
		if key != "" {
			out = append(out, key)
		}
	}

	return out
}

func (s *SellerProfileServiceImpl) ApproveProfile(ctx context.Context, userID string, approvedBy string) (resp dto.SellerProfileEnvelope, err error) {
	return s.transition(ctx, userID, func(p *domain.SellerProfile) error {
		return p.Approve(approvedBy, s.now())
	})
}

func (s *SellerProfileServiceImpl) RejectProfile(ctx context.Context, userID string, reason string) (resp dto.SellerProfileEnvelope, err error) {
	return s.transition(ctx, userID, func(p *domain.SellerProfile) error {
		return p.Reject(reason)
	})
}

func (s *SellerProfileServiceImpl) SuspendProfile(ctx context.Context, userID string) (resp dto.SellerProfileEnvelope, err error) {
	return s.transition(ctx, userID, func(p *domain.SellerProfile) error {
		return p.Suspend()
	})
}

func (s *SellerProfileServiceImpl) transition(ctx context.Context, userID string, apply func(p *domain.SellerProfile) error) (resp dto.SellerProfileEnvelope, err error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return resp, errs.ErrProfileNotFound
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, id)
	if err != nil {
		return
	}

	previous := profile.ProfileStatus
	if err = apply(&profile); err != nil {
		return
	}
	profile.UpdatedAt = s.now()

	profile, err = s.profileRepo.SaveProfile(ctx, profile)
	if err != nil {
		return
	}

	s.statusChanged(ctx, profile, previous)

	return s.envelope(profile, ""), nil
}

// statusChanged fans a status change out to the event stream and the seller's
// inbox. Neither failure is reported to the caller.
func (s *SellerProfileServiceImpl) statusChanged(ctx context.Context, profile domain.SellerProfile, previous domain.ProfileStatus) {
	msg := dto.KafkaMessage{
		EventType: dto.EventProfileStatusChange,
		Data: dto.ProfileStatusChanged{
			UserID:          profile.UserID.Hex(),
			PreviousStatus:  string(previous),
			Status:          string(profile.ProfileStatus),
			RejectionReason: profile.RejectionReason,
			ChangedAt:       profile.UpdatedAt,
		},
	}
	if err := s.publisher.Publish(ctx, profile.UserID.Hex(), msg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "statusChanged").Msg("")
	}

	user, err := s.userRepo.GetUserByID(ctx, profile.UserID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "statusChanged").Msg("")
		return
	}

	if err := s.notifier.NotifyProfileStatus(ctx, user.Email, user.Name, string(profile.ProfileStatus), profile.RejectionReason); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "statusChanged").Msg("")
	}
}

// RefreshTotalProducts recomputes every profile's product count.
func (s *SellerProfileServiceImpl) RefreshTotalProducts(ctx context.Context) (err error) {
	userIDs, err := s.profileRepo.ListProfileUserIDs(ctx)
	if err != nil {
		return
	}

	counts, err := s.productRepo.CountProductsBySeller(ctx)
	if err != nil {
		return
	}

	totals := make(map[primitive.ObjectID]int64, len(userIDs))
	for _, id := range userIDs {
		totals[id] = counts[id]
	}

	if err = s.profileRepo.SetTotalProducts(ctx, totals); err != nil {
		return
	}

	log.Ctx(ctx).Info().Str("component", "RefreshTotalProducts").Int("profiles", len(totals)).Msg("seller stats refreshed")

	return nil
}
