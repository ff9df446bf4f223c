package mappers

import (
	"github.com/orris-inc/helpdesk/internal/domain/verification"
	"github.com/orris-inc/helpdesk/internal/infrastructure/persistence/models"
)

type VerificationMapper interface {
	ToModel(v *verification.EmailVerification) *models.EmailVerificationModel
	ToDomain(model *models.EmailVerificationModel) *verification.EmailVerification
}

type VerificationMapperImpl struct{}

func NewVerificationMapper() VerificationMapper {
	return &VerificationMapperImpl{}
}

func (m *VerificationMapperImpl) ToModel(v *verification.EmailVerification) *models.EmailVerificationModel {
	return &models.EmailVerificationModel{
		ID:        v.ID(),
		UserID:    v.UserID(),
		TokenHash: v.TokenHash(),
		CreatedAt: v.CreatedAt(),
	}
}

func (m *VerificationMapperImpl) ToDomain(model *models.EmailVerificationModel) *verification.EmailVerification {
	return verification.ReconstructEmailVerification(model.ID, model.UserID, model.TokenHash, model.CreatedAt.UTC())
}
