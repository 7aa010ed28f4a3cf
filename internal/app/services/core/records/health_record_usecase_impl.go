package records

import (
	"context"
	"path/filepath"
	"time"

	"arogya-service/internal/app/config"
	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"
)

type HealthRecordUsecase struct {
	RecordRepository contracts.HealthRecordRepository
	Storage          contracts.Storage
	AuditRecorder    contracts.AuditRecorder
	InternalConfig   *config.InternalConfig
}

func NewHealthRecordUsecase(
	recordRepository contracts.HealthRecordRepository,
	storage contracts.Storage,
	auditRecorder contracts.AuditRecorder,
	internalConfig *config.InternalConfig,
) contracts.HealthRecordUsecase {
	return &HealthRecordUsecase{
		RecordRepository: recordRepository,
		Storage:          storage,
		AuditRecorder:    auditRecorder,
		InternalConfig:   internalConfig,
	}
}

func (uc *HealthRecordUsecase) CreateRecord(ctx context.Context, session *contracts.Session, request *requests.CreateHealthRecord) (*responses.HealthRecord, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	recordType, ok := models.NormalizeRecordType(request.Type)
	if !ok {
		return nil, exceptions.ErrInvalidRecordType(nil)
	}

	visitDate, err := time.Parse("2006-01-02", request.VisitDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	record := &models.HealthRecord{
		OwnerID:      session.UserID,
		Type:         recordType,
		Title:        request.Title,
		DoctorName:   request.DoctorName,
		HospitalName: request.HospitalName,
		VisitDate:    visitDate,
		Notes:        request.Notes,
		Tags:         request.Tags,
	}
	record.SetCreatedAtUpdatedAt()

	if request.Attachment != nil {
		maxSize := int64(uc.InternalConfig.App.AttachmentMaxUploadSizeInMB)
		if err := utils.ValidateAttachment(request.Attachment, maxSize); err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}

		file, err := request.Attachment.Open()
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		defer file.Close()

		objectName := utils.GenerateFileName("record", session.UserID, filepath.Ext(request.Attachment.Filename))
		uploadedName, err := uc.Storage.UploadFile(ctx, file, request.Attachment, objectName)
		if err != nil {
			return nil, err
		}
		record.AttachmentName = uploadedName
	}

	recordID, err := uc.RecordRepository.CreateHealthRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	uc.AuditRecorder.Record(ctx, session.UserID, constvars.AuditActionCreateRecord, recordID)

	return uc.buildRecordResponse(ctx, record), nil
}

func (uc *HealthRecordUsecase) GetOwnRecords(ctx context.Context, session *contracts.Session, request *requests.SearchHealthRecords) ([]*responses.HealthRecord, error) {
	return uc.GetRecordsForUser(ctx, session, session.UserID, request)
}

// GetRecordsForUser lists one user's records. Owners see their own,
// the staff roles may list anyone's.
func (uc *HealthRecordUsecase) GetRecordsForUser(ctx context.Context, session *contracts.Session, ownerID string, request *requests.SearchHealthRecords) ([]*responses.HealthRecord, error) {
	if ownerID != session.UserID {
		switch models.Role(session.Role) {
		case models.RoleDoctor, models.RoleGovt, models.RoleAdmin:
		default:
			return nil, exceptions.ErrRecordOwnership(nil)
		}
	}

	filter := contracts.HealthRecordFilter{
		OwnerID:  ownerID,
		Doctor:   request.Doctor,
		Hospital: request.Hospital,
		Tag:      request.Tag,
		From:     request.From,
		To:       request.To,
	}
	if request.Type != "" {
		recordType, ok := models.NormalizeRecordType(request.Type)
		if !ok {
			return nil, exceptions.ErrInvalidRecordType(nil)
		}
		filter.Type = recordType
	}

	recordList, err := uc.RecordRepository.FindHealthRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]*responses.HealthRecord, 0, len(recordList))
	for _, record := range recordList {
		result = append(result, uc.buildRecordResponse(ctx, record))
	}
	return result, nil
}

func (uc *HealthRecordUsecase) UpdateRecord(ctx context.Context, session *contracts.Session, recordID string, request *requests.UpdateHealthRecord) (*responses.HealthRecord, error) {
	record, err := uc.findOwnedRecord(ctx, session, recordID)
	if err != nil {
		return nil, err
	}

	if request.Type != nil {
		recordType, ok := models.NormalizeRecordType(*request.Type)
		if !ok {
			return nil, exceptions.ErrInvalidRecordType(nil)
		}
		record.Type = recordType
	}
	if request.Title != nil {
		record.Title = *request.Title
	}
	if request.DoctorName != nil {
		record.DoctorName = *request.DoctorName
	}
	if request.HospitalName != nil {
		record.HospitalName = *request.HospitalName
	}
	if request.VisitDate != nil {
		visitDate, err := time.Parse("2006-01-02", *request.VisitDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		record.VisitDate = visitDate
	}
	if request.Notes != nil {
		record.Notes = *request.Notes
	}
	if request.Tags != nil {
		record.Tags = *request.Tags
	}
	record.SetUpdatedAt()

	if err := uc.RecordRepository.UpdateHealthRecord(ctx, record); err != nil {
		return nil, err
	}

	uc.AuditRecorder.Record(ctx, session.UserID, constvars.AuditActionUpdateRecord, record.ID)

	return uc.buildRecordResponse(ctx, record), nil
}

func (uc *HealthRecordUsecase) DeleteRecord(ctx context.Context, session *contracts.Session, recordID string) error {
	record, err := uc.findOwnedRecord(ctx, session, recordID)
	if err != nil {
		return err
	}

	if err := uc.RecordRepository.DeleteHealthRecord(ctx, record.ID); err != nil {
		return err
	}

	uc.AuditRecorder.Record(ctx, session.UserID, constvars.AuditActionDeleteRecord, record.ID)
	return nil
}

// findOwnedRecord loads a record for mutation. Only the owner and
// admins may change or delete a record.
func (uc *HealthRecordUsecase) findOwnedRecord(ctx context.Context, session *contracts.Session, recordID string) (*models.HealthRecord, error) {
	record, err := uc.RecordRepository.FindHealthRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotExist(nil)
	}

	if record.OwnerID == session.UserID || models.Role(session.Role) == models.RoleAdmin {
		return record, nil
	}
	return nil, exceptions.ErrRecordOwnership(nil)
}

func (uc *HealthRecordUsecase) buildRecordResponse(ctx context.Context, record *models.HealthRecord) *responses.HealthRecord {
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
