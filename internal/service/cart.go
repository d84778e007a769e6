package service

import (
	"context"

	"github.com/Francieverton/ACOLD-MKT/internal/events"
	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

// CartService manages the cart: product snapshots, unique by product id,
// kept in insertion order. Cart operations never touch product stock.
type CartService struct {
	App    *state.App
	Events events.Publisher
}

func (s *CartService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, events.TopicCartEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", events.TopicCartEvents, "error", err)
	}
}

// AddResult tells the caller whether the cart changed, the new badge
// count, and what to show. OpenPanel is set only on an actual add.
type AddResult struct {
	Added     bool
	Count     int
	OpenPanel bool
	Notice    Notice
}

// AddToCart snapshots the product into the cart. Adding an id already in
// the cart is a no-op with a notice, not an error.
func (s *CartService) AddToCart(ctx context.Context, productID string) (*AddResult, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add", "productID", productID)

	product, ok := s.App.FindProduct(productID)
	if !ok {
		l.Warn("add_to_cart_failed", "reason", "unknown product")
		return nil, ErrNoSuchProduct
	}
	if product.SoldOut() {
		l.Warn("add_to_cart_failed", "reason", "sold out")
		return nil, ErrSoldOut
	}
	if s.App.CartContains(productID) {
		return &AddResult{
			Count:  s.App.CartCount(),
			Notice: errorNotice("Este item já está no carrinho."),
		}, nil
	}

	if err := s.App.AppendCart(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, productID, map[string]any{
		"type":      "cart_item_added",
		"productID": productID,
	})
	l.Info("add_to_cart_success")
	return &AddResult{
		Added:     true,
		Count:     s.App.CartCount(),
		OpenPanel: true,
		Notice:    successNotice("Item adicionado ao carrinho!"),
	}, nil
}

// RemoveFromCart removes by product id and persists.
func (s *CartService) RemoveFromCart(ctx context.Context, productID string) error {
	l := logging.FromContext(ctx).With("svc", "cart.remove", "productID", productID)

	if err := s.App.RemoveCart(ctx, productID); err != nil {
		return err
	}

	s.publish(ctx, productID, map[string]any{
		"type":      "cart_item_removed",
		"productID": productID,
	})
	l.Info("remove_from_cart_success")
	return nil
}

// CheckoutResult: Done is false for the silent empty-cart no-op, in which
// case no notice is produced.
type CheckoutResult struct {
	Done   bool
	Notice Notice
}

// Checkout clears the cart wholesale. It deliberately does not decrement
// stock: the direct purchase path is a separate, non-interacting flow.
func (s *CartService) Checkout(ctx context.Context) (*CheckoutResult, error) {
	l := logging.FromContext(ctx).With("svc", "cart.checkout")

	if s.App.CartCount() == 0 {
		return &CheckoutResult{}, nil
	}
	user := s.App.CurrentUser()
	if user == nil {
		l.Warn("checkout_failed", "reason", "guest")
		return nil, ErrLoginRequired
	}

	if err := s.App.ClearCart(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":   "cart_checked_out",
		"userID": user.ID,
	})
	l.Info("checkout_success")
	return &CheckoutResult{
		Done:   true,
		Notice: successNotice("Pedido realizado com sucesso!"),
	}, nil
}
