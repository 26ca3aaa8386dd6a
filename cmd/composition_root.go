package cmd

import (
	"log/slog"
	"os"

	"storefront/internal/adapters/out/kafka"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Everything hangs off
// one gorm connection pool and one unit of work factory.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot creates the application object graph root.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) deliveryPricing() commands.DeliveryPricing {
	express, err := kernel.NewMoney(c.config.ExpressDeliveryFee)
	if err != nil {
		log.Fatalf("invalid express delivery fee: %v", err)
	}
	standard, err := kernel.NewMoney(c.config.StandardDeliveryFee)
	if err != nil {
		log.Fatalf("invalid standard delivery fee: %v", err)
	}
	threshold, err := kernel.NewMoney(c.config.FreeDeliveryThreshold)
	if err != nil {
		log.Fatalf("invalid free delivery threshold: %v", err)
	}

	return commands.DeliveryPricing{
		ExpressFee:            express,
		StandardFee:           standard,
		FreeDeliveryThreshold: threshold,
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

// CreateAddCartLineCommandHandler wires the add-to-cart use case.
func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	return commands.NewAddCartLineCommandHandler(c.cartUoWFactory())
}

// CreateUpdateCartLineCommandHandler wires the cart line quantity use case.
func (c *CompositionRoot) CreateUpdateCartLineCommandHandler() commands.UpdateCartLineCommandHandler {
	return commands.NewUpdateCartLineCommandHandler(c.cartUoWFactory(), c.logger)
}

// CreateRemoveCartLineCommandHandler wires the cart line removal use case.
func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	return commands.NewRemoveCartLineCommandHandler(c.cartUoWFactory())
}

// CreateClearCartCommandHandler wires the cart clearing use case.
func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

// CreateCheckoutCommandHandler wires checkout with the configured pricing.
func (c *CompositionRoot) CreateCheckoutCommandHandler() *commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.checkoutUoWFactory(), c.deliveryPricing(), c.logger)
}

// CreateCancelOrderCommandHandler wires customer cancellation.
func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

// CreateChangeOrderStatusCommandHandler wires operator status transitions.
func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.logger)
}

// CreateDeleteOrderCommandHandler wires operator order deletion.
func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

// CreateGetCartQueryHandler wires the self-healing cart read.
func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory, c.logger)
}

// CreateGetOrderQueryHandler wires the single order read.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

// CreateListUserOrdersQueryHandler wires the customer order listing.
func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

// CreateListOrdersQueryHandler wires the operator order listing.
func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateGetProductStockQueryHandler wires the advisory stock read.
func (c *CompositionRoot) CreateGetProductStockQueryHandler() queries.GetProductStockQueryHandler {
	return queries.NewGetProductStockQueryHandler(c.gormDB)
}

// CreateJobManager wires the outbox relay against the Kafka publisher.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	publisher := kafka.NewEventPublisher(
		[]string{c.config.KafkaHost},
		c.config.KafkaOrderChangedTopic,
	)

	var uowFactory ports.UnitOfWorkFactory = c.uowFactory
	return jobs.NewJobManager(uowFactory, publisher, c.logger)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
