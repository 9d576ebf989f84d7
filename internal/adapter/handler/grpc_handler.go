package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vitrine/stock-reserve/internal/adapter/handler/pb"
	"github.com/vitrine/stock-reserve/internal/core/domain"
	"github.com/vitrine/stock-reserve/internal/core/service"
)

// GRPCHandler serves the internal reservation API used by the order service
// and operational schedulers.
type GRPCHandler struct {
	pb.UnimplementedReservationServiceServer
	svc *service.ReservationService
}

func NewGRPCHandler(svc *service.ReservationService) *GRPCHandler {
	return &GRPCHandler{svc: svc}
}

func (h *GRPCHandler) ConvertReservation(ctx context.Context, req *pb.ConvertReservationRequest) (*pb.ConvertReservationResponse, error) {
	res, err := h.svc.Convert(ctx, req.GetReservationId(), req.GetOrderId())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReservationNotFound):
			return nil, status.Error(codes.NotFound, "reservation not found")
		case errors.Is(err, domain.ErrAlreadyConverted):
			return nil, status.Error(codes.FailedPrecondition, "reservation already converted")
		case errors.Is(err, domain.ErrMissingOrderID):
			return nil, status.Error(codes.InvalidArgument, "order_id is required")
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.ConvertReservationResponse{
		ReservationId: res.ID,
		VariantId:     res.VariantID,
		Quantity:      int32(res.Quantity),
		OrderId:       res.OrderID,
	}, nil
}

func (h *GRPCHandler) CleanupExpired(ctx context.Context, req *pb.CleanupExpiredRequest) (*pb.CleanupExpiredResponse, error) {
	count, err := h.svc.CleanupExpired(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	return &pb.CleanupExpiredResponse{Count: int32(count)}, nil
}

func (h *GRPCHandler) CheckAvailability(ctx context.Context, req *pb.CheckAvailabilityRequest) (*pb.CheckAvailabilityResponse, error) {
	a, err := h.svc.CheckAvailability(ctx, req.GetVariantId())
	if err != nil {
		if errors.Is(err, domain.ErrVariantNotFound) {
			return nil, status.Error(codes.NotFound, "variant not found")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	quantity := int(req.GetQuantity())
	if quantity <= 0 {
		quantity = 1
	}
	return &pb.CheckAvailabilityResponse{
		VariantId:   a.VariantID,
		TotalStock:  int32(a.TotalStock),
		Reserved:    int32(a.Reserved),
		Available:   int32(a.Available),
		IsAvailable: a.CanFulfill(quantity),
	}, nil
}
