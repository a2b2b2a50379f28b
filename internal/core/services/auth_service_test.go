package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nunsahui/cafeledger/internal/apperrors"
	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/core/services"
	"github.com/nunsahui/cafeledger/internal/dto"
	"github.com/nunsahui/cafeledger/internal/platform/config"
	"github.com/nunsahui/cafeledger/internal/utils"
)

// --- Test Suite ---
type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockUserRepository
	mockAudit *MockAuditService
	service   portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockAudit = new(MockAuditService)
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-for-auth-suite",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "cafeledger-test",
	}
	suite.service = services.NewAuthService(suite.mockRepo, suite.mockAudit, cfg)
}

// --- Test Cases ---

func (suite *AuthServiceTestSuite) TestRegister_FirstUserBecomesSuperAdmin() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "Founder@Cafe.Test",
		FullName: "Aisha Bello",
		Password: "correct-horse-battery",
	}

	suite.mockRepo.On("CountUsers", ctx).Return(int64(0), nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "founder@cafe.test" && u.Role == domain.RoleSuperAdmin
	}), mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditUserCreated, "founder@cafe.test", mock.Anything).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(domain.RoleSuperAdmin, user.Role)
	suite.Equal("founder@cafe.test", user.Email)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_LaterUsersDefaultToFinanceOfficer() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "cashier@cafe.test",
		FullName: "Tunde Ojo",
		Password: "correct-horse-battery",
	}

	suite.mockRepo.On("CountUsers", ctx).Return(int64(3), nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleFinanceOfficer
	}), mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditUserCreated, req.Email, mock.Anything).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal(domain.RoleFinanceOfficer, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "cashier@cafe.test",
		FullName: "Tunde Ojo",
		Password: "correct-horse-battery",
	}

	suite.mockRepo.On("CountUsers", ctx).Return(int64(1), nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("string")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAudit.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	user := &domain.User{
		UserID:   "u-1",
		Email:    "cashier@cafe.test",
		FullName: "Tunde Ojo",
		Role:     domain.RoleFinanceOfficer,
	}

	suite.mockRepo.On("FindPasswordHash", ctx, user.Email).Return(hash, nil).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "Cashier@Cafe.Test", Password: password})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.Token)
	suite.Equal(3600, resp.ExpiresIn)
	suite.Equal(user.Email, resp.User.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindPasswordHash", ctx, "cashier@cafe.test").Return(hash, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "cashier@cafe.test", Password: "a-wrong-guess"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindPasswordHash", ctx, "nobody@cafe.test").Return("", apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@cafe.test", Password: "whatever-pass"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
