package service

import (
	"errors"
	"fmt"

	"go-fabshop-api/internal/model"
	"go-fabshop-api/internal/repository"
	"go-fabshop-api/internal/ws"
	"go-fabshop-api/pkg/validator"

	"gorm.io/gorm"
)

type OrderService interface {
	CreateOrder(req *CreateOrderRequest) (*model.Order, error)
	GetOrders() ([]model.OrderRow, error)
	GetOrderByBarcode(barcode string) (*model.OrderDetail, error)
	UpdateStatus(id uint, status string, workerID *uint) (*model.Order, error)
	SetManualPrice(id uint, manualPrice *float64) (*model.Order, error)
	DeleteOrder(id uint) error
}

// CreateOrderRequest carries the order form as the frontend submits it.
type CreateOrderRequest struct {
	CustomerID    *uint  `json:"customerId"`
	CustomerName  string `json:"customerName" validate:"required"`
	ProductTypeID uint   `json:"productTypeId" validate:"required"`
	SubCategoryID *uint  `json:"subCategoryId"`
	Quantity      int    `json:"quantity" validate:"gte=0"`
	Dimensions    string `json:"dimensions" validate:"required,dimensions"`
	Color         string `json:"color" validate:"required"`
	CustomNotes   string `json:"customNotes"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
}

type orderService struct {
	orderRepo     repository.OrderRepository
	priceListRepo repository.PriceListRepository
	colorRepo     repository.ColorIncrementRepository
	wsHub         *ws.Hub
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	priceListRepo repository.PriceListRepository,
	colorRepo repository.ColorIncrementRepository,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		priceListRepo: priceListRepo,
		colorRepo:     colorRepo,
		wsHub:         hub,
	}
}

// CreateOrder prices the order and persists it. The price is computed from
// the price list and color increment rows in force right now and frozen on
// the order; the three statements run independently, there is no wrapping
// transaction (a concurrent price edit between lookup and insert prices the
// order from the older row).
func (s *orderService) CreateOrder(req *CreateOrderRequest) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	width, height, err := ParseDimensions(req.Dimensions)
	if err != nil {
		return nil, err
	}
	area := AreaSqm(width, height)

	// Missing price list or color rows never block creation: the order is
	// simply priced at zero (or without surcharge) and fixed up manually.
	pricePerSqm := 0.0
	if pl, err := s.priceListRepo.FindBasePrice(req.ProductTypeID, req.SubCategoryID); err == nil {
		pricePerSqm = pl.PricePerSqm
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	percent := 0.0
	if ci, err := s.colorRepo.FindByColor(req.Color); err == nil {
		percent = ci.PercentIncrement
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	order := &model.Order{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		ProductTypeID: req.ProductTypeID,
		SubCategoryID: req.SubCategoryID,
		Quantity:      quantity,
		Dimensions:    req.Dimensions,
		Color:         req.Color,
		CustomNotes:   req.CustomNotes,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Barcode:       MintBarcode(),
		PriceTotal:    ComputeTotal(pricePerSqm, area, percent),
		Status:        model.DefaultOrderStatus,
	}

	if err := s.orderRepo.Create(order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Barcode collision. No in-process retry: the caller re-submits
			// and gets a freshly minted identifier.
			return nil, fmt.Errorf("%w: barcode already exists", ErrConflict)
		}
		return nil, err
	}

	go s.wsHub.Publish("order_created",
		fmt.Sprintf("Order %s created for %s", order.Barcode, order.CustomerName),
		order)

	return order, nil
}

func (s *orderService) GetOrders() ([]model.OrderRow, error) {
	return s.orderRepo.FindAllRows()
}

func (s *orderService) GetOrderByBarcode(barcode string) (*model.OrderDetail, error) {
	detail, err := s.orderRepo.FindDetailByBarcode(barcode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no order with barcode %s", ErrNotFound, barcode)
	}
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// UpdateStatus sets the new status label and optionally reassigns the order.
// The status vocabulary is advisory: any string is accepted here, the
// work-status lists only drive the frontend picker.
func (s *orderService) UpdateStatus(id uint, status string, workerID *uint) (*model.Order, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}

	order, err := s.orderRepo.UpdateStatus(id, status, workerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish("order_status_updated",
		fmt.Sprintf("Order %s moved to %s", order.Barcode, order.Status),
		order)

	return order, nil
}

func (s *orderService) SetManualPrice(id uint, manualPrice *float64) (*model.Order, error) {
	order, err := s.orderRepo.UpdateManualPrice(id, manualPrice)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	go s.wsHub.Publish("order_price_overridden",
		fmt.Sprintf("Order %s billed at %.2f", order.Barcode, order.EffectivePrice()),
		order)

	return order, nil
}

func (s *orderService) DeleteOrder(id uint) error {
	return s.orderRepo.Delete(id)
}
