package service

import (
	"context"
	"testing"

	"contentshop/internal/model"
	"contentshop/internal/repository"

	"github.com/stretchr/testify/suite"
)

type OrderLifecycleSuite struct {
	suite.Suite
	orders OrderService
}

func (s *OrderLifecycleSuite) SetupTest() {
	db := newTestDB(s.T())
	s.orders = NewOrderService(db, repository.NewOrderRepository(db))
}

func (s *OrderLifecycleSuite) createOrder(userID string) *model.Order {
	items := []*model.OrderItem{
		{ProductID: "ebook-budget", Name: "E-book Budgetteren", UnitPrice: 1500, Type: "ebook"},
		{ProductID: "cursus-sparen", Name: "Cursus Sparen", UnitPrice: 8500, Type: "course"},
	}
	order, err := s.orders.Create(context.Background(), userID, items, 12100, 2100, "EUR")
	s.Require().NoError(err)
	return order
}

func (s *OrderLifecycleSuite) TestCreateStartsPending() {
	order := s.createOrder("user-1")

	s.NotEmpty(order.ID)
	s.Equal(string(model.OrderPending), order.Status)
	s.Empty(order.PaymentReference)
	s.Nil(order.PaidAt)
	s.Len(order.Items, 2)

	stored, err := s.orders.GetByID(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Equal(int64(12100), stored.Amount)
	s.Equal(int64(2100), stored.TaxAmount)
}

func (s *OrderLifecycleSuite) TestCreateYieldsDistinctIDs() {
	first := s.createOrder("user-1")
	second := s.createOrder("user-1")
	s.NotEqual(first.ID, second.ID)
}

func (s *OrderLifecycleSuite) TestPaidTransitionSetsTimestamp() {
	order := s.createOrder("user-1")

	applied, err := s.orders.UpdateStatus(context.Background(), order.ID, model.OrderPaid)
	s.Require().NoError(err)
	s.True(applied)

	stored, err := s.orders.GetByID(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Equal(string(model.OrderPaid), stored.Status)
	s.NotNil(stored.PaidAt)
}

func (s *OrderLifecycleSuite) TestFailedTransitionLeavesNoPaidTimestamp() {
	order := s.createOrder("user-1")

	applied, err := s.orders.UpdateStatus(context.Background(), order.ID, model.OrderFailed)
	s.Require().NoError(err)
	s.True(applied)

	stored, err := s.orders.GetByID(context.Background(), order.ID)
	s.Require().NoError(err)
	s.Equal(string(model.OrderFailed), stored.Status)
	s.Nil(stored.PaidAt)
}

func (s *OrderLifecycleSuite) TestDuplicateTerminalTransitionIsNoOp() {
	order := s.createOrder("user-1")

	applied, err := s.orders.UpdateStatus(context.Background(), order.ID, model.OrderPaid)
	s.Require().NoError(err)
	s.True(applied)

	// a second delivery reporting failed must not move a paid order
	applied, err = s.orders.UpdateStatus(context.Background(), order.ID, model.OrderFailed)
	s.Require().NoError(err)
	s.False(applied)

	stored, _ := s.orders.GetByID(context.Background(), order.ID)
	s.Equal(string(model.OrderPaid), stored.Status)
}

func (s *OrderLifecycleSuite) TestRefundedOnlyFromPaid() {
	order := s.createOrder("user-1")

	applied, err := s.orders.UpdateStatus(context.Background(), order.ID, model.OrderRefunded)
	s.Require().NoError(err)
	s.False(applied, "pending order must not refund")

	_, err = s.orders.UpdateStatus(context.Background(), order.ID, model.OrderPaid)
	s.Require().NoError(err)

	applied, err = s.orders.UpdateStatus(context.Background(), order.ID, model.OrderRefunded)
	s.Require().NoError(err)
	s.True(applied)
}

func (s *OrderLifecycleSuite) TestUpdateStatusUnknownOrder() {
	_, err := s.orders.UpdateStatus(context.Background(), "no-such-order", model.OrderPaid)
	s.ErrorIs(err, ErrOrderNotFound)
}

func (s *OrderLifecycleSuite) TestGetByPaymentReference() {
	order := s.createOrder("user-1")

	_, err := s.orders.GetByPaymentReference(context.Background(), "tr_unknown")
	s.ErrorIs(err, ErrOrderNotFound)

	s.Require().NoError(s.orders.AttachPaymentReference(context.Background(), order.ID, "tr_123"))

	found, err := s.orders.GetByPaymentReference(context.Background(), "tr_123")
	s.Require().NoError(err)
	s.Equal(order.ID, found.ID)
}

func (s *OrderLifecycleSuite) TestListForUserNewestFirst() {
	first := s.createOrder("user-1")
	second := s.createOrder("user-1")
	s.createOrder("user-2")

	orders, err := s.orders.ListForUser(context.Background(), "user-1")
	s.Require().NoError(err)
	s.Require().Len(orders, 2)

	ids := []string{orders[0].ID, orders[1].ID}
	s.Contains(ids, first.ID)
	s.Contains(ids, second.ID)
	s.False(orders[0].CreatedAt.Before(orders[1].CreatedAt))
}

func (s *OrderLifecycleSuite) TestHasUserPurchasedProduct() {
	order := s.createOrder("user-1")

	purchased, err := s.orders.HasUserPurchasedProduct(context.Background(), "user-1", "ebook-budget")
	s.Require().NoError(err)
	s.False(purchased, "pending orders do not count")

	_, err = s.orders.UpdateStatus(context.Background(), order.ID, model.OrderPaid)
	s.Require().NoError(err)

	purchased, err = s.orders.HasUserPurchasedProduct(context.Background(), "user-1", "ebook-budget")
	s.Require().NoError(err)
	s.True(purchased)

	purchased, err = s.orders.HasUserPurchasedProduct(context.Background(), "user-2", "ebook-budget")
	s.Require().NoError(err)
	s.False(purchased, "other users keep no access")
}

func TestOrderLifecycleSuite(t *testing.T) {
	suite.Run(t, new(OrderLifecycleSuite))
}
