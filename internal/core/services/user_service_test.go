package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/core/services"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, role, updatedBy, now)
	return args.Error(0)
}

func (m *MockUserRepository) FindPasswordHash(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockUserRepository
	mockAudit *MockAuditService
	service   portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewUserService(suite.mockRepo, suite.mockAudit)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestGetUser_Success() {
	ctx := context.Background()
	expected := &domain.User{UserID: uuid.NewString(), Email: "staff@cafe.test"}

	suite.mockRepo.On("FindUserByID", ctx, expected.UserID).Return(expected, nil).Once()

	user, err := suite.service.GetUser(ctx, expected.UserID)

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUser(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAssignRole_Success() {
	ctx := context.Background()
	actor := domain.User{UserID: uuid.NewString(), Email: "admin@cafe.test", Role: domain.RoleSuperAdmin}
	target := &domain.User{UserID: uuid.NewString(), Email: "staff@cafe.test", Role: domain.RoleFinanceOfficer}

	suite.mockRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockRepo.On("UpdateUserRole", ctx, target.UserID, domain.RoleAdmin, actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditRoleAssigned, actor.Email, mock.MatchedBy(func(d map[string]any) bool {
		return d["previousRole"] == string(domain.RoleFinanceOfficer) && d["newRole"] == string(domain.RoleAdmin)
	})).Return(nil).Once()

	updated, err := suite.service.AssignRole(ctx, target.UserID, domain.RoleAdmin, actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(domain.RoleAdmin, updated.Role)
	suite.Equal(actor.UserID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAssignRole_UnknownRole() {
	ctx := context.Background()
	actor := domain.User{UserID: uuid.NewString(), Role: domain.RoleSuperAdmin}

	updated, err := suite.service.AssignRole(ctx, uuid.NewString(), domain.Role("owner"), actor)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAssignRole_LastSuperAdminCannotDemoteSelf() {
	ctx := context.Background()
	actor := domain.User{UserID: uuid.NewString(), Email: "admin@cafe.test", Role: domain.RoleSuperAdmin}

	suite.mockRepo.On("ListUsers", ctx).Return([]domain.User{
		{UserID: actor.UserID, Role: domain.RoleSuperAdmin},
		{UserID: uuid.NewString(), Role: domain.RoleFinanceOfficer},
	}, nil).Once()

	updated, err := suite.service.AssignRole(ctx, actor.UserID, domain.RoleAdmin, actor)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAssignRole_SelfDemotionAllowedWithAnotherSuperAdmin() {
	ctx := context.Background()
	actor := domain.User{UserID: uuid.NewString(), Email: "admin@cafe.test", Role: domain.RoleSuperAdmin}
	self := &domain.User{UserID: actor.UserID, Email: actor.Email, Role: domain.RoleSuperAdmin}

	suite.mockRepo.On("ListUsers", ctx).Return([]domain.User{
		{UserID: actor.UserID, Role: domain.RoleSuperAdmin},
		{UserID: uuid.NewString(), Role: domain.RoleSuperAdmin},
	}, nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, actor.UserID).Return(self, nil).Once()
	suite.mockRepo.On("UpdateUserRole", ctx, actor.UserID, domain.RoleAdmin, actor.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditRoleAssigned, actor.Email, mock.Anything).Return(nil).Once()

	updated, err := suite.service.AssignRole(ctx, actor.UserID, domain.RoleAdmin, actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(domain.RoleAdmin, updated.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAssignRole_TargetNotFound() {
	ctx := context.Background()
	actor := domain.User{UserID: uuid.NewString(), Role: domain.RoleSuperAdmin}
	targetID := uuid.NewString()

	suite.mockRepo.On("FindUserByID", ctx, targetID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.AssignRole(ctx, targetID, domain.RoleAdmin, actor)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
