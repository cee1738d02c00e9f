package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/gpa-calculator/internal/evaluator"
	"github.com/sheikh-saqib/gpa-calculator/internal/grading"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
	"github.com/sheikh-saqib/gpa-calculator/internal/models/events"
)

type addSubjectRequest struct {
	Name       string   `json:"name"`
	Credit     *int     `json:"credit" validate:"required"`
	GradeValue *float64 `json:"grade_value" validate:"required"`
}

type subjectListResponse struct {
	Subjects []models.SubjectRecord `json:"subjects"`
	Count    int                    `json:"count"`
}

type gpaResponse struct {
	models.EvaluationResult
	GPAText           string `json:"gpa_text"`
	QualityPointsText string `json:"total_quality_points_text"`
	Status            string `json:"status"`
}

func (s *Server) listSubjects(c *fiber.Ctx) error {
	subjects := s.ledger.List()
	return success(c, "subjects", subjectListResponse{Subjects: subjects, Count: len(subjects)})
}

func (s *Server) addSubject(c *fiber.Ctx) error {
	var req addSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	record, err := s.ledger.Add(c.UserContext(), req.Name, *req.Credit, *req.GradeValue)
	if err != nil {
		return domainError(c, err)
	}
	return successWithCode(c, fiber.StatusCreated, "subject added", record)
}

func (s *Server) removeSubject(c *fiber.Ctx) error {
	removed, err := s.ledger.Remove(c.UserContext(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return success(c, "subject removed", removed)
}

func (s *Server) computeGPA(c *fiber.Ctx) error {
	result, err := evaluator.Compute(s.ledger.List())
	if err != nil {
		return domainError(c, err)
	}

	if s.publisher != nil {
		event := events.GPAComputed{
			GPA:                result.GPA,
			TotalCredits:       result.TotalCredits,
			TotalQualityPoints: result.TotalQualityPoints,
			SubjectCount:       result.SubjectCount,
			Status:             result.Classification.Status(),
			OccurredAt:         s.now(),
		}
		if err := s.publisher.Publish(c.UserContext(), events.TopicGPAComputed, event); err != nil {
			s.logger.Warn("could not publish event", zap.String("topic", events.TopicGPAComputed), zap.Error(err))
		}
	}

	return success(c, "gpa computed", gpaResponse{
		EvaluationResult:  result,
		GPAText:           result.FormattedGPA(),
		QualityPointsText: result.FormattedQualityPoints(),
		Status:            result.Classification.Status(),
	})
}

func (s *Server) gradeScale(c *fiber.Ctx) error {
	return success(c, "grade scale", grading.Scale())
}

func (s *Server) bandTable(c *fiber.Ctx) error {
	return success(c, "classification bands", grading.Bands())
}
