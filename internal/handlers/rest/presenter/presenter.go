package presenter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

const retryAfterSeconds = 30

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// Order денежные поля отдаются строкой с двумя знаками после запятой.
func Order(o entities.Order) dto.Order {
	return dto.Order{
		Id:               o.ID,
		ServiceId:        o.ServiceID,
		CustomerId:       o.CustomerID,
		VendorId:         o.VendorID,
		Quantity:         o.Quantity,
		Status:           o.Status.String(),
		IsPaid:           o.IsPaid,
		PaymentMethod:    o.PaymentMethod.String(),
		PaymentStatus:    o.PaymentStatus.String(),
		PaymentReference: o.PaymentReference,
		PaymentProof:     o.PaymentProof,
		PaymentNotes:     o.PaymentNotes,
		PlatformFee:      o.PlatformFee.StringFixed(2),
		VendorReceives:   o.VendorReceives.StringFixed(2),
		TotalAmount:      o.Gross().StringFixed(2),
		PaidAt:           o.PaidAt,
		ConfirmedBy:      o.ConfirmedBy,
		ConfirmedAt:      o.ConfirmedAt,
		RefundReason:     o.RefundReason,
		RefundedAt:       o.RefundedAt,
		RefundedBy:       o.RefundedBy,
		CreatedAt:        o.CreatedAt,
	}
}

func Orders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, Order(o))
	}
	return res
}

func Service(s entities.Service) dto.ServiceSummary {
	return dto.ServiceSummary{
		Id:    s.ID,
		Name:  s.Name,
		Price: s.Price.StringFixed(2),
	}
}

func Notification(n entities.Notification) dto.Notification {
	return dto.Notification{
		Id:             n.ID,
		OrderId:        n.OrderID,
		RecipientRole:  n.Recipient.Role.String(),
		RecipientId:    n.Recipient.ID,
		Message:        n.Message,
		Type:           n.Type.String(),
		ActionRequired: n.ActionRequired,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

func Notifications(notifications []entities.Notification) []dto.Notification {
	res := make([]dto.Notification, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, Notification(n))
	}
	return res
}

func WriteJSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.Err(err))
	}
}

// WriteError текст внутренних ошибок наружу не отдаётся.
func WriteError(w http.ResponseWriter, log errorLogger, status int, err error) {
	message := http.StatusText(status)
	if status < http.StatusInternalServerError && err != nil {
		message = err.Error()
	}
	WriteJSON(w, log, status, dto.ErrorResponse{Error: message})
}

// WriteUnavailable ответ 503 с подсказкой клиенту, когда повторить запрос.
func WriteUnavailable(w http.ResponseWriter, log errorLogger) {
	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	WriteError(w, log, http.StatusServiceUnavailable, nil)
}
