//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vending-machine/internal/domain/cash"
	"vending-machine/internal/domain/ledger"
	reqdto "vending-machine/internal/handler/dto/request"
	"vending-machine/internal/pkg/clock"
	"vending-machine/internal/pkg/errs"
	"vending-machine/internal/pkg/jwt"
	"vending-machine/internal/pkg/money"
	"vending-machine/internal/pkg/password"
	"vending-machine/internal/pkg/ptr"
	"vending-machine/internal/usecase/commands"
	"vending-machine/internal/usecase/shared"
	"vending-machine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MachineCommandsTestSuite struct {
	suite.Suite
	fixture *builder.MachineFixture
	cmds    commands.MachineCommands
	admin   commands.AdminCommands
	ctx     context.Context
}

func (s *MachineCommandsTestSuite) SetupTest() {
	s.fixture = builder.NewMachineBuilder().
		WithProduct(builder.NewProductBuilder()).
		WithProduct(builder.NewProductBuilder().WithCode("B2").WithName("Chocolat").WithPrice(200).WithQuantity(1)).
		WithCoins(50, 5).
		WithCoins(20, 5).
		WithSupplier(map[money.Amount]int{100: 4}).
		Build(s.T())
	uow := shared.NewUnitOfWork(s.fixture.Machine)
	s.cmds = commands.NewMachineCommands(uow)
	s.admin = commands.NewAdminCommands(uow)
	s.ctx = context.Background()
}

func TestMachineCommandsSuite(t *testing.T) {
	suite.Run(t, new(MachineCommandsTestSuite))
}

func (s *MachineCommandsTestSuite) insert(amount int64) *commands.InsertResult {
	res, err := s.cmds.InsertMoney(s.ctx, reqdto.InsertMoneyRequest{Amount: ptr.To(amount)})
	s.Require().NoError(err)
	return res
}

func (s *MachineCommandsTestSuite) TestInsertMoney() {
	s.Run("amount and decimal value accumulate", func() {
		s.insert(100)
		res, err := s.cmds.InsertMoney(s.ctx, reqdto.InsertMoneyRequest{Value: ptr.To("0,50")})
		s.Require().NoError(err)
		s.Equal(money.Amount(50), res.Accepted)
		s.Equal(money.Amount(150), res.InsertedMoney)
		s.Equal("EUR", res.Currency.Code)
	})

	s.Run("both forms at once are rejected", func() {
		_, err := s.cmds.InsertMoney(s.ctx, reqdto.InsertMoneyRequest{Amount: ptr.To(int64(100)), Value: ptr.To("1.00")})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("unknown denomination leaves the total unchanged", func() {
		_, err := s.cmds.InsertMoney(s.ctx, reqdto.InsertMoneyRequest{Amount: ptr.To(int64(3))})
		s.True(errs.Is(err, errs.ErrInvalidDenomination))
		s.Equal(money.Amount(150), s.fixture.Machine.InsertedMoney())
	})
}

func (s *MachineCommandsTestSuite) TestPurchaseFlow() {
	s.insert(200)

	sel, err := s.cmds.SelectProduct(s.ctx, "A1")
	s.Require().NoError(err)
	s.Equal("Coca-Cola", sel.Name)
	s.Equal(money.Amount(200), sel.InsertedMoney)

	res, err := s.cmds.Purchase(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("A1", res.ProductCode)
	s.Equal(money.Amount(50), res.ChangeAmount)
	s.Equal([]money.Amount{50}, res.Change)
	s.Equal([]cash.CoinCount{{Denomination: 50, Count: 1}}, res.Breakdown)
	s.Equal(9, s.fixture.Inventory.Stock("A1"))
	s.Equal(money.Amount(0), s.fixture.Machine.InsertedMoney())
}

func (s *MachineCommandsTestSuite) TestPurchaseDeclinedKeepsMoney() {
	s.insert(100)

	_, err := s.cmds.Purchase(s.ctx, "B2")
	s.True(errs.Is(err, errs.ErrInsufficientFunds))
	s.Equal(money.Amount(100), s.fixture.Machine.InsertedMoney())
	s.Equal(1, s.fixture.Inventory.Stock("B2"))
}

func (s *MachineCommandsTestSuite) TestCancelAndReturnChange() {
	s.insert(200)
	s.insert(20)

	refund, err := s.cmds.Cancel(s.ctx)
	s.Require().NoError(err)
	s.Equal(money.Amount(220), refund.Amount)
	s.Equal([]money.Amount{200, 20}, refund.Coins)
	s.Len(refund.Breakdown, 2)

	_, err = s.cmds.Cancel(s.ctx)
	s.True(errs.Is(err, errs.ErrNothingToCancel))

	empty, err := s.cmds.ReturnChange(s.ctx)
	s.Require().NoError(err)
	s.Equal(money.Amount(0), empty.Amount)
	s.Empty(empty.Coins)
}

func (s *MachineCommandsTestSuite) TestAdminCommands() {
	s.Run("add product then restock", func() {
		req := builder.NewProductBuilder().WithCode("D1").WithName("Juice").WithPrice(180).WithQuantity(2).BuildCreateRequestDTO()
		s.Require().NoError(s.admin.AddProduct(s.ctx, req))
		s.Require().NoError(s.admin.RestockProduct(s.ctx, "D1", reqdto.RestockRequest{Quantity: 3}))
		s.Equal(5, s.fixture.Inventory.Stock("D1"))
		s.Len(s.fixture.Ledger.ByType(ledger.TypeRestock), 2)
	})

	s.Run("invalid product is rejected before touching the machine", func() {
		req := builder.NewProductBuilder().WithCode("").BuildCreateRequestDTO()
		err := s.admin.AddProduct(s.ctx, req)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("restock of unknown product", func() {
		err := s.admin.RestockProduct(s.ctx, "Z9", reqdto.RestockRequest{Quantity: 1})
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("add cash", func() {
		s.Require().NoError(s.admin.AddCash(s.ctx, reqdto.CashRequest{Denomination: 200, Count: 3}))
		s.Equal(3, s.fixture.Registry.Count(200))

		err := s.admin.AddCash(s.ctx, reqdto.CashRequest{Denomination: 3, Count: 1})
		s.True(errs.Is(err, errs.ErrInvalidDenomination))
	})

	s.Run("refill serves what the supplier has", func() {
		res, err := s.admin.RefillFromSupplier(s.ctx, reqdto.CashRequest{Denomination: 100, Count: 10})
		s.Require().NoError(err)
		s.Equal(10, res.Requested)
		s.Equal(4, res.Provided)
		s.Equal(4, s.fixture.Registry.Count(100))
	})

	s.Run("clear transactions", func() {
		s.Require().NoError(s.admin.ClearTransactions(s.ctx))
		s.Empty(s.fixture.Ledger.All())
	})
}

func TestAuthCommands_Login(t *testing.T) {
	hash, err := password.HashPassword("maintenance")
	require.NoError(t, err)

	clk := clock.NewMockClock(time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-secret", time.Hour, clk)
	auth := commands.NewAuthCommands(hash, svc)

	t.Run("valid password issues a maintenance token", func(t *testing.T) {
		res, err := auth.Login(context.Background(), reqdto.LoginRequest{Password: "maintenance"})
		require.NoError(t, err)
		assert.Equal(t, time.Hour, res.ExpiresIn)

		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleMaintenance, claims.Role)
		assert.Equal(t, commands.AdminSubject, claims.Subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(context.Background(), reqdto.LoginRequest{Password: "guess"})
		assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
	})
}
