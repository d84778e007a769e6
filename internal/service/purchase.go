package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Francieverton/ACOLD-MKT/internal/events"
	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

// PurchaseService is the direct-buy flow, distinct from cart checkout.
// The original models the confirmation as a decorative delay; here it is
// an explicit deferred task with context cancellation and a per-product
// in-flight guard so overlapping purchases of the same product are
// rejected instead of racing.
type PurchaseService struct {
	App    *state.App
	Events events.Publisher
	Delay  time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

// Outcome is delivered on the channel returned by Purchase once the
// deferred continuation resolves.
type Outcome struct {
	Product models.Product
	Notice  Notice
	Err     error
}

func (s *PurchaseService) reserve(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight == nil {
		s.inflight = make(map[string]struct{})
	}
	if _, busy := s.inflight[productID]; busy {
		return false
	}
	s.inflight[productID] = struct{}{}
	return true
}

func (s *PurchaseService) release(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, productID)
}

// InFlight reports whether a purchase of the product is pending.
func (s *PurchaseService) InFlight(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.inflight[productID]
	return busy
}

// Purchase validates synchronously and returns a channel that resolves
// after the delay. Only clients may buy: sellers get a blocking error and
// guests are redirected to login by the caller. Preorder products keep
// their stock untouched.
func (s *PurchaseService) Purchase(ctx context.Context, productID string) (<-chan Outcome, error) {
	l := logging.FromContext(ctx).With("svc", "purchase", "productID", productID)

	user := s.App.CurrentUser()
	if user == nil {
		l.Warn("purchase_failed", "reason", "guest")
		return nil, ErrLoginRequired
	}
	if user.Role == models.RoleSeller {
		l.Warn("purchase_failed", "reason", "seller account")
		return nil, ErrSellerCannotBuy
	}

	product, ok := s.App.FindProduct(productID)
	if !ok {
		return nil, ErrNoSuchProduct
	}
	if product.SoldOut() {
		l.Warn("purchase_failed", "reason", "sold out")
		return nil, ErrSoldOut
	}

	if !s.reserve(productID) {
		l.Warn("purchase_failed", "reason", "already in flight")
		return nil, ErrPurchaseInFlight
	}

	done := make(chan Outcome, 1)
	go s.run(ctx, l, productID, user.ID, done)
	return done, nil
}

func (s *PurchaseService) run(ctx context.Context, l *slog.Logger, productID, userID string, done chan<- Outcome) {
	defer s.release(productID)

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		l.Warn("purchase_cancelled", "error", ctx.Err())
		done <- Outcome{Err: ctx.Err()}
		return
	case <-timer.C:
	}

	product, err := s.App.DecrementStock(ctx, productID)
	if err != nil {
		done <- Outcome{Err: err}
		return
	}

	if s.Events != nil {
		if perr := s.Events.PublishEvent(ctx, events.TopicProductEvents, productID, map[string]any{
			"type":      "product_purchased",
			"productID": productID,
			"userID":    userID,
			"stock":     product.Stock,
		}); perr != nil {
			logging.FromContext(ctx).Error("event_publish_failed", "topic", events.TopicProductEvents, "error", perr)
		}
	}

	l.Info("purchase_success", "stock", product.Stock)
	done <- Outcome{
		Product: product,
		Notice:  successNotice("Compra realizada com sucesso!"),
	}
}
