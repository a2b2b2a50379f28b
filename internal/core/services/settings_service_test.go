package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/core/services"
	"github.com/nunsahui/cafeledger/internal/dto"
)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.CafeSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CafeSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, settings domain.CafeSettings, expectedVersion int64) error {
	args := m.Called(ctx, settings, expectedVersion)
	return args.Error(0)
}

// --- Test Suite ---
type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockSettingsRepository
	mockAudit *MockAuditService
	service   portssvc.SettingsSvcFacade
	actor     domain.User
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewSettingsService(suite.mockRepo, suite.mockAudit)
	suite.actor = domain.User{UserID: uuid.NewString(), Email: "admin@cafe.test", Role: domain.RoleSuperAdmin}
}

func currentSettings() *domain.CafeSettings {
	return &domain.CafeSettings{
		SettingsID:       "settings-1",
		Version:          4,
		CafeName:         "NUNSA HUI Café",
		Address:          "Al-Hikmah University, Ilorin",
		SalaryPercentage: decimal.NewFromInt(10),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			CreatedBy: "system",
		},
	}
}

// --- Test Cases ---

func (suite *SettingsServiceTestSuite) TestGetSettings_Success() {
	ctx := context.Background()
	expected := currentSettings()

	suite.mockRepo.On("GetSettings", ctx).Return(expected, nil).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, settings)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	current := currentSettings()
	req := dto.UpdateSettingsRequest{
		Version:          current.Version,
		CafeName:         "NUNSA HUI Café",
		Address:          "New Campus Block B",
		SalaryPercentage: decimal.NewFromInt(12),
	}

	suite.mockRepo.On("GetSettings", ctx).Return(current, nil).Once()
	suite.mockRepo.On("UpdateSettings", ctx, mock.MatchedBy(func(s domain.CafeSettings) bool {
		return s.SettingsID == current.SettingsID &&
			s.Address == req.Address &&
			s.CreatedBy == current.CreatedBy &&
			s.LastUpdatedBy == suite.actor.UserID
	}), current.Version).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditSettingsUpdated, suite.actor.Email, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateSettings(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(current.Version+1, updated.Version)
	suite.Equal(req.Address, updated.Address)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_StaleVersion() {
	ctx := context.Background()
	current := currentSettings()
	req := dto.UpdateSettingsRequest{
		Version:          current.Version - 1,
		CafeName:         "NUNSA HUI Café",
		SalaryPercentage: decimal.NewFromInt(10),
	}

	suite.mockRepo.On("GetSettings", ctx).Return(current, nil).Once()
	suite.mockRepo.On("UpdateSettings", ctx, mock.AnythingOfType("domain.CafeSettings"), req.Version).Return(apperrors.ErrVersionConflict).Once()

	updated, err := suite.service.UpdateSettings(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrVersionConflict)
	suite.mockAudit.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_SalaryPercentageOutOfRange() {
	ctx := context.Background()
	req := dto.UpdateSettingsRequest{
		Version:          1,
		CafeName:         "NUNSA HUI Café",
		SalaryPercentage: decimal.NewFromInt(150),
	}

	updated, err := suite.service.UpdateSettings(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetSettings", mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
