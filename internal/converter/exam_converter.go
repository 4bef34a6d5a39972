package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

func ExamToResponse(exam *entity.Exam) *dto.ExamResponse {
	if exam == nil {
		return nil
	}
	response := &dto.ExamResponse{
		ID:             exam.ID,
		PatientID:      exam.PatientID,
		AppointmentID:  exam.AppointmentID,
		ExamType:       exam.ExamType,
		RequestDate:    exam.RequestDate,
		CollectionDate: exam.CollectionDate,
		ResultDate:     exam.ResultDate,
		Result:         exam.Result,
		Unit:           exam.Unit,
		ReferenceValue: exam.ReferenceValue,
		Observations:   exam.Observations,
		StatusID:       exam.StatusID,
		CreatedAt:      exam.CreatedAt,
		UpdatedAt:      exam.UpdatedAt,
	}
	if exam.Status != nil {
		response.Status = &dto.ExamStatusResponse{
			ID:          exam.Status.ID,
			Description: exam.Status.Description,
		}
	}
	return response
}

func ExamsToResponses(exams []entity.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, len(exams))
	for i, exam := range exams {
		responses[i] = *ExamToResponse(&exam)
	}
	return responses
}
