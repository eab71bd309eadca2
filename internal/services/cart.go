package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tokoretail/retail-platform/internal/errors"
	"github.com/tokoretail/retail-platform/internal/models"
	repository "github.com/tokoretail/retail-platform/internal/repositories"
	"github.com/tokoretail/retail-platform/internal/requestctx"
)

type CartService interface {
	GetCart(ctx context.Context, customerID int64) (*models.Cart, error)
	AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error)
	RemoveItem(ctx context.Context, itemID int64) error
	ClearCart(ctx context.Context, customerID int64) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the cart lines priced at the current product prices.
func (s *cartService) GetCart(ctx context.Context, customerID int64) (*models.Cart, error) {

	items, err := s.cartRepo.GetCartItems(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &models.Cart{CustomerID: customerID, Items: items, Total: total}, nil
}

// AddItem puts a product in the cart, merging with an existing line for the
// same product. Stock is checked against the requested quantity only; the
// authoritative check happens at checkout.
func (s *cartService) AddItem(ctx context.Context, req *models.AddItemRequest) (*models.CartItem, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, readError(err, "Product")
	}

	if req.Quantity > product.StockQuantity {
		return nil, errors.InvalidArgumentError(fmt.Sprintf("Insufficient stock for %s (product %d): available %d, requested %d",
			product.Name, product.ID, product.StockQuantity, req.Quantity))
	}

	item, err := s.cartRepo.AddItem(ctx, req.CustomerID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, writeError(err, "Cart item", "add")
	}

	item.ProductName = product.Name
	item.UnitPrice = product.UnitPrice
	item.StockQuantity = product.StockQuantity
	item.Unit = product.Unit

	return item, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*models.CartItem, error) {

	if quantity < 1 {
		return nil, errors.InvalidArgumentError("Quantity must be at least 1")
	}

	if err := s.authorizeItem(ctx, itemID); err != nil {
		return nil, err
	}

	item, err := s.cartRepo.UpdateQuantity(ctx, itemID, quantity)
	if err != nil {
		return nil, writeError(err, "Cart item", "update")
	}

	return item, nil
}

func (s *cartService) RemoveItem(ctx context.Context, itemID int64) error {

	if err := s.authorizeItem(ctx, itemID); err != nil {
		return err
	}

	if err := s.cartRepo.RemoveItem(ctx, itemID); err != nil {
		return writeError(err, "Cart item", "remove")
	}

	return nil
}

func (s *cartService) ClearCart(ctx context.Context, customerID int64) error {

	if _, err := s.cartRepo.ClearCart(ctx, customerID); err != nil {
		return errors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return nil
}

// authorizeItem loads the cart line and checks it belongs to the session
// customer, when there is one.
func (s *cartService) authorizeItem(ctx context.Context, itemID int64) error {

	item, err := s.cartRepo.GetItem(ctx, itemID)
	if err != nil {
		return readError(err, "Cart item")
	}

	return requestctx.AuthorizeCustomer(ctx, item.CustomerID)
}
