package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Francieverton/ACOLD-MKT/internal/events"
	"github.com/Francieverton/ACOLD-MKT/internal/logging"
	"github.com/Francieverton/ACOLD-MKT/internal/models"
	"github.com/Francieverton/ACOLD-MKT/internal/state"
)

// ProductService covers the seller dashboard operations: create, partial
// edit, delete and the editing marker behind the form.
type ProductService struct {
	App    *state.App
	Events events.Publisher
}

func (s *ProductService) publish(ctx context.Context, key string, event map[string]any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, events.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", events.TopicProductEvents, "error", err)
	}
}

// ProductForm carries the fields of the seller form. Nil means "not
// provided": edits merge only the fields that were set, and never touch
// the product's id or seller identity.
type ProductForm struct {
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"img"`
	Description *string  `json:"desc"`
	Stock       *int     `json:"stock"`
	Preorder    *bool    `json:"preorder"`
}

func (f ProductForm) validate() error {
	if f.Price != nil && *f.Price < 0 {
		return ErrValidation
	}
	if f.Stock != nil && *f.Stock < 0 {
		return ErrValidation
	}
	return nil
}

// Save creates a product or, when editingID is set, merges the form into
// the existing record. A successful edit resets the editing marker.
func (s *ProductService) Save(ctx context.Context, form ProductForm, editingID string) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "product.save")

	if err := form.validate(); err != nil {
		l.Warn("product_save_failed", "reason", "invalid field value")
		return nil, err
	}

	if editingID != "" {
		return s.update(ctx, l, form, editingID)
	}
	return s.create(ctx, l, form)
}

func (s *ProductService) create(ctx context.Context, l *slog.Logger, form ProductForm) (*models.Product, error) {
	seller := s.App.CurrentUser()
	if seller == nil {
		l.Warn("product_create_failed", "reason", "guest")
		return nil, ErrLoginRequired
	}

	product := models.Product{
		ID:         uuid.NewString(),
		SellerID:   seller.ID,
		SellerName: seller.Name,
	}
	applyForm(&product, form)

	if err := s.App.PrependProduct(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, product.ID, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"sellerID":  product.SellerID,
	})
	l.Info("product_create_success", "productID", product.ID)
	return &product, nil
}

func (s *ProductService) update(ctx context.Context, l *slog.Logger, form ProductForm, id string) (*models.Product, error) {
	product, ok := s.App.FindProduct(id)
	if !ok {
		l.Warn("product_update_failed", "reason", "unknown product", "productID", id)
		return nil, ErrNoSuchProduct
	}

	applyForm(&product, form)

	if err := s.App.ReplaceProduct(ctx, product); err != nil {
		return nil, err
	}
	s.App.SetEditing("")

	s.publish(ctx, product.ID, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
	})
	l.Info("product_update_success", "productID", product.ID)
	return &product, nil
}

func applyForm(p *models.Product, form ProductForm) {
	if form.Title != nil {
		p.Title = *form.Title
	}
	if form.Price != nil {
		p.Price = *form.Price
	}
	if form.ImageURL != nil {
		p.ImageURL = *form.ImageURL
	}
	if form.Description != nil {
		p.Description = *form.Description
	}
	if form.Stock != nil {
		p.Stock = *form.Stock
	}
	if form.Preorder != nil {
		p.Preorder = *form.Preorder
	}
}

// Delete removes by id. User confirmation happens in the UI before this is
// called; the dashboard is already scoped to the seller's own products.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	l := logging.FromContext(ctx).With("svc", "product.delete", "productID", id)

	if err := s.App.RemoveProduct(ctx, id); err != nil {
		return err
	}
	if s.App.EditingID() == id {
		s.App.SetEditing("")
	}

	s.publish(ctx, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	l.Info("product_delete_success")
	return nil
}

// BeginEdit sets the editing marker and returns the record so the form can
// be pre-filled. The record is not locked against other edits.
func (s *ProductService) BeginEdit(id string) (models.Product, error) {
	product, ok := s.App.FindProduct(id)
	if !ok {
		return models.Product{}, ErrNoSuchProduct
	}
	s.App.SetEditing(id)
	return product, nil
}
