// Package http provides the inbound HTTP adapter. Request and response
// bodies are the package's own DTOs; the handlers translate them to
// commands and queries and never touch the domain model beyond that.
package http

import (
	"net/http"
	"strconv"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/domain/model/cart"
	"checkout/internal/core/domain/model/customer"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler commands.PlaceOrderCommandHandler
	addProductHandler commands.AddProductCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getAllProductsHandler   queries.GetAllProductsQueryHandler

	// Catalog lookups for cart building
	productRepository ports.ProductRepository
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The product repository resolves cart items against the catalog
// before an order is placed.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
	productRepository ports.ProductRepository,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		addProductHandler:       addProductHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getAllProductsHandler:   getAllProductsHandler,
		productRepository:       productRepository,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/products", s.CreateProduct)
	e.GET("/api/v1/products", s.GetProducts)
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders/pending", s.GetPendingOrders)
}

// CreateProduct handles POST /api/v1/products - registers a catalog entry.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	price, err := kernel.MoneyFromString(newProduct.Price)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid price: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddProductCommand(
		newProduct.Name, newProduct.Description, price, newProduct.StockQuantity)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid product data: " + err.Error(),
		})
	}

	id, err := s.addProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Failed to create product",
		})
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

// GetProducts handles GET /api/v1/products - retrieves the catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve products",
		})
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:            p.ID.Bytes(),
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price.String(),
			StockQuantity: p.StockQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/orders - places an order from a cart.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	buyer, err := customer.NewCustomer(
		newOrder.Customer.Name,
		newOrder.Customer.Email,
		newOrder.Customer.Address,
		newOrder.Customer.PhoneNumber,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer data: " + err.Error(),
		})
	}

	basket, err := s.buildCart(ctx, newOrder.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart: " + err.Error(),
		})
	}

	discountStrategy, err := parseDiscountStrategy(newOrder.Discount)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid discount: " + err.Error(),
		})
	}

	deliveryStrategy, err := parseDeliveryStrategy(newOrder.Delivery.Method)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery: " + err.Error(),
		})
	}

	deliveryDetails := map[string]string{
		"weight": strconv.FormatFloat(newOrder.Delivery.Weight, 'f', -1, 64),
	}

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), buyer, basket,
		discountStrategy, deliveryStrategy,
		deliveryDetails, newOrder.Payment)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, Order{
		ID:              placed.ID().Bytes(),
		Status:          placed.Status().String(),
		Subtotal:        placed.Subtotal().String(),
		AppliedDiscount: placed.AppliedDiscount().String(),
		DeliveryCost:    placed.DeliveryCost().String(),
		Total:           placed.Total().String(),
	})
}

// GetPendingOrders handles GET /api/v1/orders/pending - retrieves orders
// awaiting payment.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]PendingOrder, len(orders))
	for i, o := range orders {
		response[i] = PendingOrder{
			ID:           o.ID.Bytes(),
			CustomerName: o.CustomerName,
			Total:        o.Total.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// buildCart resolves the requested items against the catalog and aggregates
// them into a cart. Duplicate product IDs merge into one line.
func (s *Server) buildCart(ctx echo.Context, items []OrderItem) (*cart.Cart, error) {
	basket := cart.NewCart()

	for _, item := range items {
		productID, err := kernel.UUIDFromBytes(item.ProductID[:])
		if err != nil {
			return nil, err
		}

		p, err := s.productRepository.Get(ctx.Request().Context(), productID)
		if err != nil {
			return nil, err
		}

		if err = basket.AddItem(p, item.Quantity); err != nil {
			return nil, err
		}
	}

	return basket, nil
}
