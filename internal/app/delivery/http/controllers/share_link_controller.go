package controllers

import (
	"context"
	"net/http"
	"time"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShareLinkController struct {
	Log              *zap.Logger
	ShareLinkUsecase contracts.ShareLinkUsecase
}

func NewShareLinkController(logger *zap.Logger, shareLinkUsecase contracts.ShareLinkUsecase) *ShareLinkController {
	return &ShareLinkController{
		Log:              logger,
		ShareLinkUsecase: shareLinkUsecase,
	}
}

// Resolve serves the public, unauthenticated share endpoint. The
// usecase decides between unknown and expired tokens.
func (ctrl *ShareLinkController) Resolve(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ShareLinkController.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token := chi.URLParam(r, constvars.URLParamToken)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ShareLinkUsecase.ResolveShareLink(ctx, token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ShareLinkController.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ShareLinkFetchSuccess, result)
}
