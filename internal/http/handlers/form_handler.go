package handlers

import (
	"net/http"

	"contact-form-server/internal/models"
	"contact-form-server/internal/services"
	"contact-form-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	forms *services.FormService
}

type FormListResponse struct {
	Forms []models.Form `json:"forms"`
}

func NewFormHandler(forms *services.FormService) *FormHandler {
	return &FormHandler{forms: forms}
}

func (h *FormHandler) List(c *gin.Context) {
	forms, err := h.forms.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, FormListResponse{Forms: forms})
}

func (h *FormHandler) Add(c *gin.Context) {
	var req services.FormFields
	if err := bindBody(c, &req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if _, err := h.forms.Add(c.Request.Context(), req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusCreated, "Form added successfully")
}

func (h *FormHandler) Update(c *gin.Context) {
	var req services.FormFields
	if err := bindBody(c, &req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	if _, err := h.forms.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Form updated successfully")
}
