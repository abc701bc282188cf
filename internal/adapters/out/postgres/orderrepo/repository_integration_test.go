package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"nexye/internal/adapters/out/postgres/orderrepo"
	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/core/domain/model/order"
	"nexye/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *GormOrderRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GormOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *GormOrderRepositoryTestSuite) newCompletedOrder(createdAt time.Time) *order.Order {
	senderPin, err := kernel.NewPincode("110001")
	suite.Require().NoError(err)
	receiverPin, err := kernel.NewPincode("700001")
	suite.Require().NoError(err)

	sender, err := order.NewParty("Ravi Kumar", "9876543210", "12 MG Road", senderPin, "ravi@example.com")
	suite.Require().NoError(err)
	receiver, err := order.NewParty("Asha Verma", "9123456780", "7 Park Street", receiverPin, "asha@example.com")
	suite.Require().NoError(err)

	parcel, err := order.NewPackage(1.5, kernel.DefaultDimensions(), "Books", 500)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(kernel.NewOrderID(createdAt), sender, receiver, parcel,
		courier.Express, createdAt, order.Done, "AWB123456", "Delhivery", "")
	suite.Require().NoError(err)
	return o
}

func (suite *GormOrderRepositoryTestSuite) newFailedOrder(createdAt time.Time, reason string) *order.Order {
	o := suite.newCompletedOrder(createdAt)
	restored, err := order.RestoreOrder(o.ID(), o.Sender(), o.Receiver(), o.Parcel(),
		o.ServiceType(), o.CreatedAt(), order.Failed, "", "", reason)
	suite.Require().NoError(err)
	return restored
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_CompletedOrder() {
	ctx := context.Background()
	o := suite.newCompletedOrder(time.Now().UTC().Truncate(time.Millisecond))

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(o.ID(), restored.ID())
	suite.Equal(order.Done, restored.Status())
	suite.Equal("AWB123456", restored.AWBCode())
	suite.Equal("Delhivery", restored.CourierName())
	suite.Equal("Ravi Kumar", restored.Sender().Name())
	suite.Equal("700001", restored.Receiver().Pincode().String())
	suite.InDelta(1.5, restored.Parcel().Weight(), 0.001)
}

func (suite *GormOrderRepositoryTestSuite) TestAddAndGet_FailedOrderKeepsReason() {
	ctx := context.Background()
	o := suite.newFailedOrder(time.Now().UTC(), "No courier services available for this route")

	err := suite.repo.Add(ctx, o)
	suite.Require().NoError(err)

	restored, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Failed, restored.Status())
	suite.Empty(restored.AWBCode())
	suite.Equal("No courier services available for this route", restored.FailureReason())
}

func (suite *GormOrderRepositoryTestSuite) TestAdd_RejectsNonTerminalOrder() {
	ctx := context.Background()
	o := suite.newCompletedOrder(time.Now().UTC())

	senderPin, _ := kernel.NewPincode("110001")
	sender, _ := order.NewParty("Ravi Kumar", "9876543210", "12 MG Road", senderPin, "ravi@example.com")
	parcel, _ := order.NewPackage(1.5, kernel.DefaultDimensions(), "Books", 500)
	inFlight, err := order.NewOrder(o.ID(), sender, sender, parcel, courier.Express, time.Now())
	suite.Require().NoError(err)

	err = suite.repo.Add(ctx, inFlight)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *GormOrderRepositoryTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	id, err := kernel.OrderIDFromString("NEXYE-1")
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, id)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormOrderRepositoryTestSuite) TestAdd_DuplicateOrderIDIsRejected() {
	ctx := context.Background()
	o := suite.newCompletedOrder(time.Now().UTC())

	suite.Require().NoError(suite.repo.Add(ctx, o))
	suite.Require().Error(suite.repo.Add(ctx, o))
}

func TestGormOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormOrderRepositoryTestSuite))
}
