package cmd

import (
	"context"
	"fmt"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	pricing    services.PricingEngine
	finder     services.RestaurantFinder
	logger     logrus.FieldLogger
	now        func() time.Time
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger logrus.FieldLogger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithCommitHook(LogCommittedAggregates(logger))),
		pricing:    services.NewPricingEngine(),
		finder:     services.NewRestaurantFinder(),
		logger:     logger,
		now:        time.Now,
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

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCartCommandHandler() commands.DeleteCartCommandHandler {
	return commands.NewDeleteCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f, c.pricing, c.now, c.config.BusinessLocation)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReviewOrderCommandHandler() commands.ReviewOrderCommandHandler {
	return commands.NewReviewOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReportOrderCommandHandler() commands.ReportOrderCommandHandler {
	return commands.NewReportOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() commands.ExpirePendingOrdersCommandHandler {
	return commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateViewCartQueryHandler() queries.ViewCartQueryHandler {
	return queries.NewViewCartQueryHandler(c.gormDB, c.pricing, c.now)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRevenueSummaryQueryHandler() queries.GetRevenueSummaryQueryHandler {
	return queries.NewGetRevenueSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyRestaurantsQueryHandler() queries.GetNearbyRestaurantsQueryHandler {
	return queries.NewGetNearbyRestaurantsQueryHandler(c.gormDB, c.finder)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddCartItem:    c.CreateAddCartItemCommandHandler(),
		UpdateCartItem: c.CreateUpdateCartItemCommandHandler(),
		DeleteCart:     c.CreateDeleteCartCommandHandler(),
		Checkout:       c.CreateCheckoutCommandHandler(),
		AcceptOrder:    c.CreateAcceptOrderCommandHandler(),
		RejectOrder:    c.CreateRejectOrderCommandHandler(),
		ReviewOrder:    c.CreateReviewOrderCommandHandler(),
		ReportOrder:    c.CreateReportOrderCommandHandler(),
		CancelOrder:    c.CreateCancelOrderCommandHandler(),

		ViewCart:          c.CreateViewCartQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		RevenueSummary:    c.CreateGetRevenueSummaryQueryHandler(),
		NearbyRestaurants: c.CreateGetNearbyRestaurantsQueryHandler(),
		GetRestaurant:     c.CreateGetRestaurantQueryHandler(),
	})
}

func (c *CompositionRoot) CreatePendingOrderExpiryJob() *jobs.PendingOrderExpiryJob {
	handler := c.CreateExpirePendingOrdersCommandHandler()
	return jobs.NewPendingOrderExpiryJob(&handler, jobs.PendingOrderExpiryConfig{
		Schedule:  c.config.PendingOrderSchedule,
		TTL:       c.config.PendingOrderTTL,
		BatchSize: c.config.PendingOrderBatchSize,
		Timeout:   c.config.PendingOrderRunTimeout,
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreatePendingOrderExpiryJob())
}

// LogCommittedAggregates records every aggregate a transaction wrote once the
// transaction has committed.
func LogCommittedAggregates(logger logrus.FieldLogger) postgres.CommitHook {
	logger = logger.WithField("component", "unit_of_work")
	return func(_ context.Context, committed []postgres.TrackedAggregate) {
		for _, tracked := range committed {
			logger.WithFields(logrus.Fields{
				"id":        tracked.ID,
				"aggregate": fmt.Sprintf("%T", tracked.Aggregate),
			}).Debug("aggregate committed")
		}
	}
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
