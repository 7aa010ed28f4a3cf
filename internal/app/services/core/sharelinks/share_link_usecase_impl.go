package sharelinks

import (
	"context"
	"fmt"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
)

type ShareLinkUsecase struct {
	ShareLinkRepository contracts.ShareLinkRepository
	RecordRepository    contracts.HealthRecordRepository
	UserRepository      contracts.UserRepository
	Storage             contracts.Storage
	AuditRecorder       contracts.AuditRecorder
	InternalConfig      *config.InternalConfig
}

func NewShareLinkUsecase(
	shareLinkRepository contracts.ShareLinkRepository,
	recordRepository contracts.HealthRecordRepository,
	userRepository contracts.UserRepository,
	storage contracts.Storage,
	auditRecorder contracts.AuditRecorder,
	internalConfig *config.InternalConfig,
) contracts.ShareLinkUsecase {
	return &ShareLinkUsecase{
		ShareLinkRepository: shareLinkRepository,
		RecordRepository:    recordRepository,
		UserRepository:      userRepository,
		Storage:             storage,
		AuditRecorder:       auditRecorder,
		InternalConfig:      internalConfig,
	}
}

func (uc *ShareLinkUsecase) IssueShareLink(ctx context.Context, session *contracts.Session, recordID string) (*responses.ShareLink, error) {
	record, err := uc.RecordRepository.FindHealthRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	// TODO: restrict issuance to the record owner once the mobile app
	// stops issuing links on behalf of clinic staff accounts.

	token, err := utils.GenerateShareToken()
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	link := &models.ShareLink{
		Token:     token,
		RecordID:  record.ID,
		CreatedBy: session.UserID,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.App.ShareLinkExpiryTimeInHours) * time.Hour),
	}
	link.SetCreatedAtUpdatedAt()

	if _, err := uc.ShareLinkRepository.CreateShareLink(ctx, link); err != nil {
		return nil, err
	}

	uc.AuditRecorder.Record(ctx, session.UserID, constvars.AuditActionShareRecord, record.ID)

	return &responses.ShareLink{
		Token:     token,
		ShareURL:  fmt.Sprintf("%s%s/share/%s", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, token),
		ExpiresAt: link.ExpiresAt,
	}, nil
}

// ResolveShareLink returns the shared record for an unauthenticated
// caller. The view is read only and repeat resolution within the expiry
// window is allowed.
func (uc *ShareLinkUsecase) ResolveShareLink(ctx context.Context, token string) (*responses.SharedRecord, error) {
	if err := utils.ValidateShareToken(token); err != nil {
		return nil, exceptions.ErrShareLinkNotExist(err)
	}

	link, err := uc.ShareLinkRepository.FindShareLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrShareLinkNotExist(nil)
	}
	if link.IsExpired(time.Now()) {
		return nil, exceptions.ErrShareLinkExpired(nil)
	}

	record, err := uc.RecordRepository.FindHealthRecordByID(ctx, link.RecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	owner, err := uc.UserRepository.FindUserByID(ctx, record.OwnerID)
	if err != nil {
		return nil, err
	}

	response := &responses.SharedRecord{
		Record: uc.buildRecordResponse(ctx, record),
	}
	if owner != nil {
		response.Owner = &responses.SharedRecordOwner{
			ID:    owner.ID,
			Name:  owner.Name,
			Email: owner.Email,
		}
	}
	return response, nil
}

func (uc *ShareLinkUsecase) buildRecordResponse(ctx context.Context, record *models.HealthRecord) *responses.HealthRecord {
	response := &responses.HealthRecord{
		ID:           record.ID,
		OwnerID:      record.OwnerID,
		Type:         string(record.Type),
		Title:        record.Title,
		DoctorName:   record.DoctorName,
		HospitalName: record.HospitalName,
		VisitDate:    record.VisitDate,
		Notes:        record.Notes,
		Tags:         record.Tags,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}

	if record.AttachmentName != "" {
		expiry := time.Duration(uc.InternalConfig.App.MinioPresignedURLExpiryTimeInHours) * time.Hour
		url, err := uc.Storage.GetObjectURLWithExpiryTime(ctx, record.AttachmentName, expiry)
		if err == nil {
			response.AttachmentURL = url
		}
	}
	return response
}
