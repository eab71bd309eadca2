package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tokoretail/retail-platform/internal/cache"
	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/metrics"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/requestctx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrEmptyCart is wrapped by the error returned when checking out an empty cart.
var ErrEmptyCart = stdErrors.New("cart is empty")

const tracerName = "github.com/tokoretail/retail-platform/internal/services"

type CheckoutService interface {
	Checkout(ctx context.Context, customerID int64) (*models.Order, error)
}

type checkoutService struct {
	tx          repository.TxManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	limiter     repository.RateLimitRepository
	cache       cache.Cache
	tracer      trace.Tracer
}

// NewCheckoutService wires the checkout transaction. limiter and productCache
// are optional.
func NewCheckoutService(tx repository.TxManager, cartRepo repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository, limiter repository.RateLimitRepository, productCache cache.Cache) CheckoutService {
	return &checkoutService{
		tx:          tx,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		limiter:     limiter,
		cache:       productCache,
		tracer:      otel.Tracer(tracerName),
	}
}

// Checkout turns the customer's cart into a pending order in one
// transaction: stock is checked for every line, the order and its lines are
// written at the current unit prices, stock is decremented and the cart is
// emptied. Either all of it is committed or none of it is.
func (s *checkoutService) Checkout(ctx context.Context, customerID int64) (*models.Order, error) {

	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "Checkout", trace.WithAttributes(attribute.Int64("customer.id", customerID)))
	defer span.End()

	logger := requestctx.Logger(ctx).With(slog.Int64("customerID", customerID))

	if customerID <= 0 {
		return nil, errors.InvalidArgumentError("Invalid customer id")
	}

	if err := s.checkRateLimit(ctx, logger, customerID); err != nil {
		metrics.ObserveCheckout(metrics.CheckoutRateLimited, time.Since(start))
		return nil, err
	}

	var order *models.Order

	err := s.tx.WithinTx(ctx, nil, func(tx *sql.Tx) error {
		var err error
		order, err = s.checkoutTx(ctx, tx, customerID)
		return err
	})

	outcome := checkoutOutcome(err)
	metrics.ObserveCheckout(outcome, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)

		if appErr, ok := errors.IsAppError(err); ok {
			logger.Warn("Checkout rejected", slog.String("outcome", outcome), slog.String("reason", appErr.Message))
			return nil, appErr
		}

		logger.Error("Checkout failed", slog.Any("error", err))
		return nil, errors.DatabaseError("Failed to complete checkout").WithError(err)
	}

	units := 0
	productIDs := make([]int64, 0, len(order.Items))
	for _, item := range order.Items {
		units += item.Quantity
		productIDs = append(productIDs, item.ProductID)
	}
	metrics.AddItemsSold(units)

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.ProductKeys(productIDs...)...); err != nil {
			logger.Warn("Failed to invalidate product cache after checkout", slog.Any("error", err))
		}
	}

	span.SetAttributes(attribute.Int64("order.id", order.ID), attribute.String("order.total", order.TotalAmount.String()))
	logger.Info("Checkout completed", slog.Int64("orderID", order.ID), slog.String("total", order.TotalAmount.String()), slog.Int("items", len(order.Items)))

	return order, nil
}

func (s *checkoutService) checkRateLimit(ctx context.Context, logger *slog.Logger, customerID int64) error {

	if s.limiter == nil {
		return nil
	}

	allowed, _, retryAfter, err := s.limiter.CheckCheckoutRateLimit(ctx, customerID)
	if err != nil {
		logger.Warn("Checkout rate limit check failed, continuing", slog.Any("error", err))
		return nil
	}

	if !allowed {
		return errors.TooManyRequestsError("Too many checkout attempts").
			WithDetail("Retry after " + strconv.Itoa(retryAfter) + " seconds")
	}

	return nil
}

func (s *checkoutService) checkoutTx(ctx context.Context, tx *sql.Tx, customerID int64) (*models.Order, error) {

	carts := s.cartRepo.WithTx(tx)
	products := s.productRepo.WithTx(tx)
	orders := s.orderRepo.WithTx(tx)

	lines, err := carts.ListCheckoutItems(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("reading cart: %w", err)
	}

	if len(lines) == 0 {
		return nil, errors.InvalidArgumentError("Cart is empty").WithError(ErrEmptyCart)
	}

	if err := checkStock(lines); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}

	order := &models.Order{
		CustomerID:  customerID,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
	}

	if err := orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	order.Items = make([]models.OrderItem, 0, len(lines))
	itemIDs := make([]int64, 0, len(lines))

	for _, line := range lines {
		item := models.OrderItem{
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ProductName: line.ProductName,
		}

		if err := orders.CreateOrderItem(ctx, &item); err != nil {
			return nil, fmt.Errorf("creating order item for product %d: %w", line.ProductID, err)
		}

		if err := products.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			if stdErrors.Is(err, repository.ErrInsufficientStock) {
				return nil, errors.InvalidArgumentError(fmt.Sprintf("Insufficient stock for %s (product %d): requested %d", line.ProductName, line.ProductID, line.Quantity)).
					WithError(err)
			}
			return nil, fmt.Errorf("decrementing stock for product %d: %w", line.ProductID, err)
		}

		order.Items = append(order.Items, item)
		itemIDs = append(itemIDs, line.CartItemID)
	}

	if _, err := carts.DeleteCheckedOutItems(ctx, customerID, itemIDs); err != nil {
		return nil, fmt.Errorf("clearing cart: %w", err)
	}

	return order, nil
}

// checkStock reports every line whose quantity exceeds the available stock.
func checkStock(lines []models.CheckoutLine) error {

	var shortages []string

	for _, line := range lines {
		if line.Quantity > line.StockQuantity {
			shortages = append(shortages, fmt.Sprintf("Insufficient stock for %s (product %d): available %d, requested %d",
				line.ProductName, line.ProductID, line.StockQuantity, line.Quantity))
		}
	}

	if len(shortages) == 0 {
		return nil
	}

	appErr := errors.InvalidArgumentError(shortages[0]).WithError(repository.ErrInsufficientStock)
	if len(shortages) > 1 {
		appErr.WithDetail(strings.Join(shortages, "; "))
	}

	return appErr
}

func checkoutOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.CheckoutSuccess
	case stdErrors.Is(err, ErrEmptyCart):
		return metrics.CheckoutEmptyCart
	case stdErrors.Is(err, repository.ErrInsufficientStock):
		return metrics.CheckoutInsufficientStock
	default:
		return metrics.CheckoutFailed
	}
}
