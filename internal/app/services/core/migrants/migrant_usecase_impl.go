package migrants

import (
	"context"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/dto/responses"
	"arogya-service/internal/pkg/exceptions"
)

type MigrantUsecase struct {
	UserRepository   contracts.UserRepository
	RecordRepository contracts.HealthRecordRepository
}

func NewMigrantUsecase(userRepository contracts.UserRepository, recordRepository contracts.HealthRecordRepository) contracts.MigrantUsecase {
	return &MigrantUsecase{
		UserRepository:   userRepository,
		RecordRepository: recordRepository,
	}
}

func (uc *MigrantUsecase) ListMigrants(ctx context.Context, page, pageSize int) ([]*responses.MigrantSummary, int64, error) {
	return uc.listMigrants(ctx, "", page, pageSize)
}

func (uc *MigrantUsecase) SearchMigrants(ctx context.Context, nameQuery string, page, pageSize int) ([]*responses.MigrantSummary, int64, error) {
	return uc.listMigrants(ctx, nameQuery, page, pageSize)
}

func (uc *MigrantUsecase) listMigrants(ctx context.Context, nameQuery string, page, pageSize int) ([]*responses.MigrantSummary, int64, error) {
	userList, total, err := uc.UserRepository.FindUsersByRole(ctx, models.RoleMigrant, nameQuery, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	ownerIDs := make([]string, 0, len(userList))
	for _, user := range userList {
		ownerIDs = append(ownerIDs, user.ID)
	}

	counts := map[string]int64{}
	if len(ownerIDs) > 0 {
		counts, err = uc.RecordRepository.CountHealthRecordsByOwner(ctx, ownerIDs)
		if err != nil {
			return nil, 0, err
		}
	}

	summaries := make([]*responses.MigrantSummary, 0, len(userList))
	for _, user := range userList {
		summaries = append(summaries, &responses.MigrantSummary{
			ID:          user.ID,
			Name:        user.Name,
			HealthID:    user.HealthID,
			Email:       user.Email,
			Phone:       user.Phone,
			RecordCount: counts[user.ID],
		})
	}
	return summaries, total, nil
}

func (uc *MigrantUsecase) GetMigrantDetail(ctx context.Context, migrantID string) (*responses.MigrantDetail, error) {
	user, err := uc.UserRepository.FindUserByID(ctx, migrantID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleMigrant {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	recordList, err := uc.RecordRepository.FindHealthRecords(ctx, contracts.HealthRecordFilter{OwnerID: user.ID})
	if err != nil {
		return nil, err
	}

	records := make([]*responses.HealthRecord, 0, len(recordList))
	for _, record := range recordList {
		records = append(records, &responses.HealthRecord{
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
		})
	}

	return &responses.MigrantDetail{
		User: &responses.User{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			Role:      string(user.Role),
			Language:  user.Language,
			HealthID:  user.HealthID,
			CreatedAt: user.CreatedAt,
		},
		Records: records,
	}, nil
}

func (uc *MigrantUsecase) GetStats(ctx context.Context) (*responses.MigrantStats, error) {
	totalMigrants, err := uc.UserRepository.CountUsersByRole(ctx, models.RoleMigrant)
	if err != nil {
		return nil, err
	}

	totalRecords, err := uc.RecordRepository.CountHealthRecords(ctx)
	if err != nil {
		return nil, err
	}

	byType, err := uc.RecordRepository.AggregateRecordCountsByType(ctx)
	if err != nil {
		return nil, err
	}

	perMonth, err := uc.RecordRepository.AggregateRecordCountsByMonth(ctx)
	if err != nil {
		return nil, err
	}

	topHospitals, err := uc.RecordRepository.AggregateTopHospitals(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &responses.MigrantStats{
		TotalMigrants:   totalMigrants,
		TotalRecords:    totalRecords,
		RecordsByType:   byType,
		RecordsPerMonth: perMonth,
		TopHospitals:    topHospitals,
	}, nil
}

// GetAnalytics backs the overview dashboard: record volume per type,
// migrant signups over the last seven days and the language breakdown
// of the migrant population.
func (uc *MigrantUsecase) GetAnalytics(ctx context.Context) (*responses.MigrantAnalytics, error) {
	byType, err := uc.RecordRepository.AggregateRecordCountsByType(ctx)
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -7)
	recentRegistrations, err := uc.UserRepository.CountUsersByRoleSince(ctx, models.RoleMigrant, since)
	if err != nil {
		return nil, err
	}

	byLanguage, err := uc.UserRepository.AggregateUsersByLanguage(ctx, models.RoleMigrant)
	if err != nil {
		return nil, err
	}

	return &responses.MigrantAnalytics{
		RecordsByType:       byType,
		RecentRegistrations: recentRegistrations,
		MigrantsByLanguage:  byLanguage,
	}, nil
}
