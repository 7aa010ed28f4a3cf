package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/app/delivery/http/middlewares"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/dto/requests"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HealthRecordController struct {
	Log               *zap.Logger
	RecordUsecase     contracts.HealthRecordUsecase
	ShareLinkUsecase  contracts.ShareLinkUsecase
	MaxUploadSizeInMB int
}

func NewHealthRecordController(logger *zap.Logger, recordUsecase contracts.HealthRecordUsecase, shareLinkUsecase contracts.ShareLinkUsecase, maxUploadSizeInMB int) *HealthRecordController {
	return &HealthRecordController{
		Log:               logger,
		RecordUsecase:     recordUsecase,
		ShareLinkUsecase:  shareLinkUsecase,
		MaxUploadSizeInMB: maxUploadSizeInMB,
	}
}

func (ctrl *HealthRecordController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("HealthRecordController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request, err := ctrl.bindCreateRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.CreateRecord(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HealthRecordController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RecordCreatedSuccess, result)
}

// bindCreateRequest accepts either a plain JSON body or a multipart
// form carrying an attachment next to the record fields.
func (ctrl *HealthRecordController) bindCreateRequest(r *http.Request) (*requests.CreateHealthRecord, error) {
	contentType := r.Header.Get(constvars.HeaderContentType)
	if !strings.HasPrefix(contentType, constvars.MIMEMultipartForm) {
		request := new(requests.CreateHealthRecord)
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
		return request, nil
	}

	maxBytes := int64(ctrl.MaxUploadSizeInMB) * 1024 * 1024
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.CreateHealthRecord{
		Type:         r.FormValue("type"),
		Title:        r.FormValue("title"),
		DoctorName:   r.FormValue("doctor_name"),
		HospitalName: r.FormValue("hospital_name"),
		VisitDate:    r.FormValue("visit_date"),
		Notes:        r.FormValue("notes"),
	}
	if rawTags := r.FormValue("tags"); rawTags != "" {
		for _, tag := range strings.Split(rawTags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				request.Tags = append(request.Tags, trimmed)
			}
		}
	}
	if _, fileHeader, err := r.FormFile("attachment"); err == nil {
		request.Attachment = fileHeader
	}
	return request, nil
}

func (ctrl *HealthRecordController) List(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.SearchHealthRecords{
		Type:     r.URL.Query().Get(constvars.URLQueryParamType),
		Doctor:   r.URL.Query().Get(constvars.URLQueryParamDoctor),
		Hospital: r.URL.Query().Get(constvars.URLQueryParamHospital),
		Tag:      r.URL.Query().Get(constvars.URLQueryParamTag),
		From:     r.URL.Query().Get(constvars.URLQueryParamFrom),
		To:       r.URL.Query().Get(constvars.URLQueryParamTo),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.GetOwnRecords(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordFetchedSuccess, result)
}

func (ctrl *HealthRecordController) ListByUser(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	userID := chi.URLParam(r, constvars.URLParamUserID)
	if err := utils.ValidateURLParamObjectID(userID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamUserID))
		return
	}

	request := &requests.SearchHealthRecords{
		Type: r.URL.Query().Get(constvars.URLQueryParamType),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.GetRecordsForUser(ctx, session, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordFetchedSuccess, result)
}

func (ctrl *HealthRecordController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("HealthRecordController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	if err := utils.ValidateURLParamObjectID(recordID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamRecordID))
		return
	}

	// Unknown fields are rejected so the allow list in the DTO is the
	// single source of what can change.
	request := new(requests.UpdateHealthRecord)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownUpdateField(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.RecordUsecase.UpdateRecord(ctx, session, recordID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HealthRecordController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordUpdatedSuccess, result)
}

func (ctrl *HealthRecordController) Delete(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("HealthRecordController.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	if err := utils.ValidateURLParamObjectID(recordID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamRecordID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.RecordUsecase.DeleteRecord(ctx, session, recordID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HealthRecordController.Delete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordDeletedSuccess, nil)
}

func (ctrl *HealthRecordController) Share(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("HealthRecordController.Share called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	recordID := chi.URLParam(r, constvars.URLParamRecordID)
	if err := utils.ValidateURLParamObjectID(recordID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamRecordID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ShareLinkUsecase.IssueShareLink(ctx, session, recordID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("HealthRecordController.Share succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRecordIDKey, recordID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShareLinkIssueSuccess, result)
}
