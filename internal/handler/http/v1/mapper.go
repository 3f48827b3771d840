package v1

import "github.com/rescue365/rescue_dispatch_system/internal/models"

// CreateRequestToReportModel maps the create DTO onto a domain report.
// Status, assignment and funding fields are owned by the service.
func CreateRequestToReportModel(dto CreateReportRequest) *models.RescueReport {
	return &models.RescueReport{
		AnimalType:  models.AnimalCategory(dto.AnimalType),
		Severity:    models.Severity(dto.Severity),
		Description: dto.Description,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Address:     dto.Address,
		ImageURL:    dto.ImageURL,
	}
}

// ModelToReportResponse maps a domain report to the response DTO
func ModelToReportResponse(model *models.RescueReport) *ReportResponse {
	return &ReportResponse{
		ID:                model.ID,
		AnimalType:        string(model.AnimalType),
		Severity:          string(model.Severity),
		Description:       model.Description,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		Address:           model.Address,
		ImageURL:          model.ImageURL,
		Status:            string(model.Status),
		ReporterID:        model.ReporterID,
		AssignedRescuerID: model.AssignedRescuerID,
		DonationsNeeded:   model.DonationsNeeded,
		DonationsReceived: model.DonationsReceived,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToReportResponses maps a slice of reports to response DTOs
func ModelsToReportResponses(reports []*models.RescueReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report)
	}
	return responses
}

// ModelToStatusUpdateResponse maps a progress note to the response DTO
func ModelToStatusUpdateResponse(model *models.StatusUpdate) *StatusUpdateResponse {
	return &StatusUpdateResponse{
		ID:        model.ID,
		ReportID:  model.ReportID,
		RescuerID: model.RescuerID,
		Message:   model.Message,
		CreatedAt: model.CreatedAt,
	}
}

// ModelsToStatusUpdateResponses maps a slice of progress notes to DTOs
func ModelsToStatusUpdateResponses(updates []*models.StatusUpdate) []*StatusUpdateResponse {
	responses := make([]*StatusUpdateResponse, len(updates))
	for i, update := range updates {
		responses[i] = ModelToStatusUpdateResponse(update)
	}
	return responses
}

// ModelToProfileResponse maps a rescuer profile to the response DTO
func ModelToProfileResponse(model *models.RescuerProfile) *RescuerProfileResponse {
	return &RescuerProfileResponse{
		UserID:     model.UserID,
		Name:       model.Name,
		Phone:      model.Phone,
		Experience: model.Experience,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}
