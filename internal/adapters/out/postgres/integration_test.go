package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/outboxrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/sequencerepo"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresAdaptersIntegrationTestSuite exercises the storage adapters against
// a real PostgreSQL container: the atomic stock primitives, optimistic order
// updates, cart round-trips, counter-backed order numbers and the outbox.
type PostgresAdaptersIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
}

func (suite *PostgresAdaptersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartLineDTO{},
		&productrepo.ProductDTO{},
		&sequencerepo.CounterDTO{},
		&outboxrepo.OrderEventDTO{},
	))
}

func (suite *PostgresAdaptersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, carts, cart_lines, products, counters, order_events",
	).Error)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PostgresAdaptersIntegrationTestSuite) seedProduct(stock int) kernel.UUID {
	productID := kernel.NewUUID()
	dto := productrepo.ProductDTO{
		ID:             productID.Bytes(),
		Name:           "Denim Jacket",
		Price:          1000,
		AvailableStock: stock,
		Image:          "jacket.jpg",
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return productID
}

func (suite *PostgresAdaptersIntegrationTestSuite) createTestOrder(userID kernel.UUID) *order.Order {
	productID := kernel.NewUUID()
	price, err := kernel.NewMoney(1000)
	suite.Require().NoError(err)
	line, err := order.NewLine(productID, "Denim Jacket", price, 2, "M", nil, "jacket.jpg")
	suite.Require().NoError(err)

	address, err := order.NewAddress("Sam Doe", "+1234567", "1 Main St", "Springfield", "49000", "US")
	suite.Require().NoError(err)
	fee, err := kernel.NewMoney(250)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), "RC260900042", userID, []order.Line{line},
		address, order.DeliveryStandard, fee, order.PaymentMethodCard, "",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestTryReserve_ConcurrentCheckouts_NeverOversell() {
	ctx := context.Background()
	productID := suite.seedProduct(5)
	repo := inventoryrepo.NewGormInventoryRepository(suite.db)

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.TryReserve(ctx, productID, 2)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			suite.Require().ErrorIs(err, ports.ErrInsufficientStock)
		}
	}

	// 5 units, 2 per reservation: exactly two can win.
	suite.Equal(2, succeeded)

	remaining, err := repo.Peek(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(1, remaining)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestTryReserve_MissingProduct() {
	ctx := context.Background()
	repo := inventoryrepo.NewGormInventoryRepository(suite.db)

	err := repo.TryReserve(ctx, kernel.NewUUID(), 1)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestRelease_RestoresReservedStock() {
	ctx := context.Background()
	productID := suite.seedProduct(3)
	repo := inventoryrepo.NewGormInventoryRepository(suite.db)

	suite.Require().NoError(repo.TryReserve(ctx, productID, 3))
	suite.Require().NoError(repo.Release(ctx, productID, 3))

	remaining, err := repo.Peek(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(3, remaining)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestOrderRepository_RoundTrip() {
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(suite.db)
	userID := kernel.NewUUID()
	testOrder := suite.createTestOrder(userID)

	suite.Require().NoError(repo.Add(ctx, testOrder))

	loaded, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.Number(), loaded.Number())
	suite.True(loaded.UserID().IsEqual(userID))
	suite.Equal(order.Pending, loaded.Status())
	suite.Equal(testOrder.Total(), loaded.Total())
	suite.Require().Len(loaded.Lines(), 1)
	suite.Equal("Denim Jacket", loaded.Lines()[0].Name())
	suite.Equal(2, loaded.Lines()[0].Quantity())
	suite.Equal(1, loaded.Version())
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestOrderRepository_Update_VersionConflict() {
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(suite.db)
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(ctx, testOrder))

	first, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = first.Cancel(false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Update(ctx, first))

	// The stale copy must lose: its version no longer matches the row.
	_, err = second.Cancel(false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(repo.Update(ctx, second), errs.ErrVersionIsInvalid)

	reloaded, err := repo.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, reloaded.Status())
	suite.Equal(2, reloaded.Version())
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestOrderRepository_Delete() {
	ctx := context.Background()
	repo := orderrepo.NewGormOrderRepository(suite.db)
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(repo.Add(ctx, testOrder))

	suite.Require().NoError(repo.Delete(ctx, testOrder.ID()))
	_, err := repo.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(repo.Delete(ctx, testOrder.ID()), errs.ErrObjectNotFound)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestCartRepository_RoundTripAndRewrite() {
	ctx := context.Background()
	repo := cartrepo.NewGormCartRepository(suite.db)
	userID := kernel.NewUUID()

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	suite.Require().NoError(err)
	color, err := kernel.NewColor("indigo", "#3f51b5")
	suite.Require().NoError(err)
	_, err = userCart.AddLine(kernel.NewUUID(), 2, "M", &color)
	suite.Require().NoError(err)
	_, err = userCart.AddLine(kernel.NewUUID(), 1, "L", nil)
	suite.Require().NoError(err)

	suite.Require().NoError(repo.Add(ctx, userCart))

	loaded, err := repo.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Lines(), 2)
	suite.Equal("M", loaded.Lines()[0].Size())
	suite.Require().NotNil(loaded.Lines()[0].Color())
	suite.Equal("indigo", loaded.Lines()[0].Color().Name())
	suite.Nil(loaded.Lines()[1].Color())

	// Clearing updates the row to zero lines without deleting the cart.
	loaded.Clear()
	suite.Require().NoError(repo.Update(ctx, loaded))

	reloaded, err := repo.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.True(reloaded.IsEmpty())
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestCartRepository_UnknownUser() {
	ctx := context.Background()
	repo := cartrepo.NewGormCartRepository(suite.db)

	_, err := repo.GetByUser(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestSequenceGenerator_ConcurrentDrawsAreUnique() {
	ctx := context.Background()
	generator := sequencerepo.NewGormSequenceGenerator(suite.db)

	const draws = 20
	var wg sync.WaitGroup
	numbers := make(chan string, draws)

	for range draws {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := generator.NextOrderNumber(ctx)
			suite.NoError(err)
			numbers <- number
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, draws)
	for number := range numbers {
		suite.Regexp(`^RC\d{4}\d{5,}$`, number)
		suite.False(seen[number], "order number %s drawn twice", number)
		seen[number] = true
	}
	suite.Len(seen, draws)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestOutbox_FetchAndMarkPublished() {
	ctx := context.Background()
	repo := outboxrepo.NewGormOutboxRepository(suite.db)
	orderID := kernel.NewUUID()

	for _, eventType := range []string{ports.OrderEventCreated, ports.OrderEventStatusChanged} {
		err := repo.Add(ctx, ports.OrderEvent{
			OrderID:    orderID,
			Type:       eventType,
			Payload:    []byte(`{"orderId":"x"}`),
			OccurredAt: time.Now().UTC(),
		})
		suite.Require().NoError(err)
	}

	pending, err := repo.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.Equal(ports.OrderEventCreated, pending[0].Type)
	suite.Less(pending[0].ID, pending[1].ID)

	suite.Require().NoError(repo.MarkPublished(ctx, []int64{pending[0].ID}))

	remaining, err := repo.FetchUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(ports.OrderEventStatusChanged, remaining[0].Type)
}

func (suite *PostgresAdaptersIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllWrites() {
	ctx := context.Background()
	productID := suite.seedProduct(5)

	uow := postgres.NewGormUnitOfWorkFactory(suite.db).Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.InventoryRepository().TryReserve(ctx, productID, 2))
	testOrder := suite.createTestOrder(kernel.NewUUID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	stock, err := inventoryrepo.NewGormInventoryRepository(suite.db).Peek(ctx, productID)
	suite.Require().NoError(err)
	suite.Equal(5, stock, "rolled back reservation must not stick")

	_, err = orderrepo.NewGormOrderRepository(suite.db).Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestPostgresAdaptersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PostgresAdaptersIntegrationTestSuite))
}
