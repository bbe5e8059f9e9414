package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chennai-a11y/prefsync/internal/application/preference/usecases"
	"github.com/chennai-a11y/prefsync/internal/domain/preference"
	"github.com/chennai-a11y/prefsync/internal/shared/config"
	"github.com/chennai-a11y/prefsync/internal/shared/logger"
	"github.com/chennai-a11y/prefsync/internal/shared/utils"
)

// PreferenceHandler serves the settings, translation and language endpoints.
type PreferenceHandler struct {
	service      preferenceService
	cookieConfig config.CookieConfig
	logger       logger.Interface
}

func NewPreferenceHandler(service preferenceService, cookieConfig config.CookieConfig, logger logger.Interface) *PreferenceHandler {
	return &PreferenceHandler{
		service:      service,
		cookieConfig: cookieConfig,
		logger:       logger,
	}
}

// SetLanguageRequest is the body of POST /api/language.
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// GetSettings godoc
// @Summary Get settings
// @Description Return the caller's stored settings document, or the defaults if none was saved
// @Tags settings
// @Produce json
// @Success 200 {object} preference.Settings "Settings document as stored"
// @Failure 401 {object} utils.ErrorBody "User not authenticated"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /api/settings [get]
func (h *PreferenceHandler) GetSettings(c *gin.Context) {
	doc, err := h.service.ReadSettings(c.Request.Context(), utils.GetIdentity(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.RawJSONResponse(c, http.StatusOK, doc)
}

// SaveSettings godoc
// @Summary Save settings
// @Description Replace the caller's settings document. The body is stored as sent; incomplete documents are accepted
// @Tags settings
// @Accept json
// @Produce json
// @Param request body preference.Settings true "Settings document"
// @Success 200 {object} utils.AckResponse "Localized acknowledgment"
// @Failure 400 {object} utils.ErrorBody "Invalid settings payload"
// @Failure 401 {object} utils.ErrorBody "User not authenticated"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /api/settings [post]
func (h *PreferenceHandler) SaveSettings(c *gin.Context) {
	token := utils.GetIdentity(c)

	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Warnw("failed to read settings body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, usecases.InvalidPayloadMessage)
		return
	}

	// Identity is checked before the payload so anonymous callers always get 401.
	doc, parseErr := preference.ParseDocument(raw)
	if parseErr != nil && token != "" {
		utils.ErrorResponse(c, http.StatusBadRequest, usecases.InvalidPayloadMessage)
		return
	}

	result, err := h.service.WriteSettings(c.Request.Context(), token, doc)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, utils.AckResponse{
		Success: result.Success,
		Message: result.Message,
	})
}

// GetTranslations godoc
// @Summary Get translations
// @Description Return the UI dictionary for a language code
// @Tags translations
// @Produce json
// @Param lang path string true "Language code" example(ta)
// @Success 200 {object} map[string]string "Dictionary"
// @Failure 404 {object} utils.ErrorBody "Language not supported"
// @Router /api/translations/{lang} [get]
func (h *PreferenceHandler) GetTranslations(c *gin.Context) {
	dict, err := h.service.GetTranslations(c.Request.Context(), c.Param("lang"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, dict)
}

// SetLanguage godoc
// @Summary Set language preference
// @Description Validate a language code and set the short-lived language cookie
// @Tags translations
// @Accept json
// @Produce json
// @Param request body SetLanguageRequest true "Language code"
// @Success 200 {object} utils.AckResponse "Language accepted"
// @Failure 400 {object} utils.ErrorBody "Unsupported language"
// @Router /api/language [post]
func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("unreadable language request", "error", err)
	}

	result, err := h.service.SetLanguagePreference(c.Request.Context(), req.Language)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetLanguageCookie(c, h.cookieConfig, result.Language)
	utils.JSONResponse(c, http.StatusOK, utils.AckResponse{
		Success:  result.Success,
		Language: result.Language,
	})
}
