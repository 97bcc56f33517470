package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:               o.ID,
		ServiceID:        o.ServiceID,
		CustomerID:       o.CustomerID,
		VendorID:         o.VendorID,
		Quantity:         o.Quantity,
		Status:           entities.OrderStatusType(o.Status),
		IsPaid:           o.IsPaid,
		PaymentMethod:    entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus:    entities.PaymentStatusType(o.PaymentStatus),
		PaymentReference: o.PaymentReference,
		PaymentProof:     o.PaymentProof,
		PaymentNotes:     o.PaymentNotes,
		PlatformFee:      o.PlatformFee,
		VendorReceives:   o.VendorReceives,
		PaymentStartedAt: o.PaymentStartedAt,
		PaymentCheckedAt: o.PaymentCheckedAt,
		PaidAt:           o.PaidAt,
		ConfirmedBy:      o.ConfirmedBy,
		ConfirmedAt:      o.ConfirmedAt,
		RefundReason:     o.RefundReason,
		RefundedAt:       o.RefundedAt,
		RefundedBy:       o.RefundedBy,
		CreatedAt:        o.CreatedAt,
	}
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:               o.ID,
		ServiceID:        o.ServiceID,
		CustomerID:       o.CustomerID,
		VendorID:         o.VendorID,
		Quantity:         o.Quantity,
		IsPaid:           o.IsPaid,
		PaymentReference: o.PaymentReference,
		PaymentProof:     o.PaymentProof,
		PaymentNotes:     o.PaymentNotes,
		PlatformFee:      o.PlatformFee,
		VendorReceives:   o.VendorReceives,
		PaymentStartedAt: o.PaymentStartedAt,
		PaymentCheckedAt: o.PaymentCheckedAt,
		PaidAt:           o.PaidAt,
		ConfirmedBy:      o.ConfirmedBy,
		ConfirmedAt:      o.ConfirmedAt,
		RefundReason:     o.RefundReason,
		RefundedAt:       o.RefundedAt,
		RefundedBy:       o.RefundedBy,
		CreatedAt:        o.CreatedAt,
	}

	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}
	if o.PaymentMethod != nil {
		method := o.PaymentMethod.String()
		orderModifyDB.PaymentMethod = &method
	}
	if o.PaymentStatus != nil {
		paymentStatus := o.PaymentStatus.String()
		orderModifyDB.PaymentStatus = &paymentStatus
	}

	return orderModifyDB
}
