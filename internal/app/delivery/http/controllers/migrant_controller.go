package controllers

import (
	"context"
	"net/http"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"arogya-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MigrantController struct {
	Log            *zap.Logger
	MigrantUsecase contracts.MigrantUsecase
}

func NewMigrantController(logger *zap.Logger, migrantUsecase contracts.MigrantUsecase) *MigrantController {
	return &MigrantController{
		Log:            logger,
		MigrantUsecase: migrantUsecase,
	}
}

func (ctrl *MigrantController) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summaries, total, err := ctrl.MigrantUsecase.ListMigrants(ctx, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.MigrantsFetchedSuccess, pagination, summaries)
}

func (ctrl *MigrantController) Search(w http.ResponseWriter, r *http.Request) {
	nameQuery := r.URL.Query().Get(constvars.URLParamQuery)
	page, pageSize := parsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summaries, total, err := ctrl.MigrantUsecase.SearchMigrants(ctx, nameQuery, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.MigrantsFetchedSuccess, pagination, summaries)
}

func (ctrl *MigrantController) Detail(w http.ResponseWriter, r *http.Request) {
	migrantID := chi.URLParam(r, constvars.URLParamMigrantID)
	if err := utils.ValidateURLParamObjectID(migrantID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamMigrantID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MigrantUsecase.GetMigrantDetail(ctx, migrantID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MigrantsFetchedSuccess, result)
}

func (ctrl *MigrantController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MigrantUsecase.GetStats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StatsFetchedSuccess, result)
}

func (ctrl *MigrantController) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MigrantUsecase.GetAnalytics(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyticsFetchedSuccess, result)
}
