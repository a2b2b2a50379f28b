package services_test

import (
	"context"
	"fmt"
	"testing"

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

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) ListTransactions(ctx context.Context, itemID string) ([]domain.InventoryTransaction, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryTransaction), args.Error(1)
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) RecordStockTransaction(ctx context.Context, txn domain.InventoryTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Test Suite ---
type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockInventoryRepository
	mockAudit *MockAuditService
	service   portssvc.InventorySvcFacade
	actor     domain.User
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.mockAudit = new(MockAuditService)
	suite.service = services.NewInventoryService(suite.mockRepo, suite.mockAudit)
	suite.actor = domain.User{
		UserID: uuid.NewString(),
		Email:  "manager@cafe.test",
		Role:   domain.RoleAdmin,
	}
}

// --- Test Cases ---

func (suite *InventoryServiceTestSuite) TestCreateItem_Success() {
	ctx := context.Background()
	req := dto.CreateInventoryItemRequest{
		Name:              "Arabica Beans",
		Category:          "Ingredients",
		Unit:              "kg",
		InitialStock:      25,
		LowStockThreshold: 5,
		CostPrice:         decimal.NewFromInt(4500),
		SellPrice:         decimal.NewFromInt(6000),
	}

	suite.mockRepo.On("SaveItem", ctx, mock.MatchedBy(func(i domain.InventoryItem) bool {
		return i.Name == req.Name && i.CurrentStock == req.InitialStock && i.InitialStock == req.InitialStock
	})).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditInventoryItemAdded, suite.actor.Email, mock.Anything).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	suite.Equal(req.InitialStock, item.CurrentStock)
	suite.Equal(domain.StockStatusOK, item.Status())
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateInventoryItemRequest{
		Name:      "Arabica Beans",
		Category:  "Ingredients",
		Unit:      "kg",
		CostPrice: decimal.NewFromInt(4500),
		SellPrice: decimal.NewFromInt(6000),
	}

	suite.mockRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(apperrors.ErrDuplicate).Once()

	item, err := suite.service.CreateItem(ctx, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(item)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAudit.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestRecordTransaction_Purchase() {
	ctx := context.Background()
	item := &domain.InventoryItem{ItemID: uuid.NewString(), Name: "Arabica Beans", CurrentStock: 10}
	req := dto.CreateStockTransactionRequest{Type: domain.StockPurchase, Quantity: 15, Note: "weekly restock"}

	suite.mockRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()
	suite.mockRepo.On("RecordStockTransaction", ctx, mock.MatchedBy(func(t domain.InventoryTransaction) bool {
		return t.ItemID == item.ItemID &&
			t.ItemName == item.Name &&
			t.Type == domain.StockPurchase &&
			t.Quantity == 15 &&
			t.RecordedBy == suite.actor.UserID
	})).Return(nil).Once()
	suite.mockAudit.On("Append", ctx, domain.AuditStockRecorded, suite.actor.Email, mock.Anything).Return(nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, item.ItemID, req, suite.actor)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(item.Name, txn.ItemName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestRecordTransaction_OverSaleRejected() {
	ctx := context.Background()
	item := &domain.InventoryItem{ItemID: uuid.NewString(), Name: "Arabica Beans", CurrentStock: 3}
	req := dto.CreateStockTransactionRequest{Type: domain.StockSale, Quantity: 10}
	overSaleErr := fmt.Errorf("%w: sale of 10 exceeds current stock 3", apperrors.ErrInsufficientStock)

	suite.mockRepo.On("FindItemByID", ctx, item.ItemID).Return(item, nil).Once()
	suite.mockRepo.On("RecordStockTransaction", ctx, mock.AnythingOfType("domain.InventoryTransaction")).Return(overSaleErr).Once()

	txn, err := suite.service.RecordTransaction(ctx, item.ItemID, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.mockAudit.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestRecordTransaction_ItemNotFound() {
	ctx := context.Background()
	itemID := uuid.NewString()
	req := dto.CreateStockTransactionRequest{Type: domain.StockSale, Quantity: 1}

	suite.mockRepo.On("FindItemByID", ctx, itemID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.RecordTransaction(ctx, itemID, req, suite.actor)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "RecordStockTransaction", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestListItems_Success() {
	ctx := context.Background()
	expected := []domain.InventoryItem{
		{ItemID: uuid.NewString(), Name: "Arabica Beans"},
		{ItemID: uuid.NewString(), Name: "Milk"},
	}

	suite.mockRepo.On("ListItems", ctx).Return(expected, nil).Once()

	items, err := suite.service.ListItems(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, items)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
