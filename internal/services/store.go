package service

import (
	"context"
	"log/slog"

	"github.com/tokoretail/retail-platform/internal/cache"
	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/requestctx"
)

// StoreService serves the customer-facing storefront: the in-stock catalogue
// and the customer's orders.
type StoreService interface {
	ListAvailableProducts(ctx context.Context) ([]*models.Product, error)
	GetAvailableProduct(ctx context.Context, id int64) (*models.Product, error)
	SearchProducts(ctx context.Context, params models.ProductSearchParams) ([]*models.Product, error)
	ListCustomerOrders(ctx context.Context, customerID int64) ([]*models.Order, error)
	GetOrderDetails(ctx context.Context, orderID int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error)
}

type storeService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	cache       cache.Cache
}

func NewStoreService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository, productCache cache.Cache) StoreService {
	return &storeService{productRepo: productRepo, orderRepo: orderRepo, cache: productCache}
}

func (s *storeService) ListAvailableProducts(ctx context.Context) ([]*models.Product, error) {

	var products []*models.Product
	if s.cacheGet(ctx, cache.AvailableProductsKey, &products) {
		return products, nil
	}

	products, err := s.productRepo.ListAvailableProducts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	s.cacheSet(ctx, cache.AvailableProductsKey, products)

	return products, nil
}

func (s *storeService) GetAvailableProduct(ctx context.Context, id int64) (*models.Product, error) {

	key := cache.ProductKey(id)

	var cached models.Product
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.productRepo.GetAvailableProductByID(ctx, id)
	if err != nil {
		return nil, readError(err, "Product")
	}

	s.cacheSet(ctx, key, product)

	return product, nil
}

func (s *storeService) SearchProducts(ctx context.Context, params models.ProductSearchParams) ([]*models.Product, error) {

	products, err := s.productRepo.SearchProducts(ctx, params)
	if err != nil {
		return nil, errors.DatabaseError("Failed to search products").WithError(err)
	}

	return products, nil
}

func (s *storeService) ListCustomerOrders(ctx context.Context, customerID int64) ([]*models.Order, error) {

	orders, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

// GetOrderDetails returns the order with its line items. A customer session
// may only read its own orders.
func (s *storeService) GetOrderDetails(ctx context.Context, orderID int64) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, readError(err, "Order")
	}

	if err := requestctx.AuthorizeCustomer(ctx, order.CustomerID); err != nil {
		return nil, err
	}

	items, err := s.orderRepo.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch order items").WithError(err)
	}

	order.Items = items

	return order, nil
}

func (s *storeService) UpdateOrderStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {

	if !status.Valid() {
		return nil, errors.InvalidArgumentError("Unknown order status: " + string(status))
	}

	order, err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, writeError(err, "Order", "update")
	}

	requestctx.Logger(ctx).Info("Order status updated", slog.Int64("orderID", orderID), slog.String("status", string(status)))

	return order, nil
}

func (s *storeService) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}

	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		requestctx.Logger(ctx).Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
		return false
	}

	return found
}

func (s *storeService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Set(ctx, key, value, 0); err != nil {
		requestctx.Logger(ctx).Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
