package request

import (
	"strconv"

	"order-time-checker/internal/domain/ordertime"
	"order-time-checker/internal/pkg/ptr"
)

// Request field names, shared by the validation tables and error messages.
const (
	FieldOrderType            = "orderType"
	FieldRequestedTime        = "requestedTime"
	FieldRequestedDateTime    = "requestedDateTime"
	FieldRestaurantOpen       = "restaurantOpen"
	FieldRestaurantClose      = "restaurantClose"
	FieldOrderAcceptOpen      = "orderAcceptOpen"
	FieldOrderAcceptClose     = "orderAcceptClose"
	FieldPickupMin            = "pickupMin"
	FieldPickupMax            = "pickupMax"
	FieldDeliveryMin          = "deliveryMin"
	FieldDeliveryMax          = "deliveryMax"
	FieldServiceDuration      = "serviceDuration"
	FieldAllowedNextDaysOrder = "allowedNextDaysOrder"
	FieldCurrentTime          = "currentTime"
)

// OrderTimeRequest covers both request shapes. Every field is optional at the
// JSON level; presence rules live in the validation tables. Numbers accept both
// 15 and "15".
type OrderTimeRequest struct {
	OrderType            *string `json:"orderType,omitempty" example:"pickup" enums:"pickup,delivery"`
	RequestedTime        *string `json:"requestedTime,omitempty" example:"15:30"`
	RequestedDateTime    *string `json:"requestedDateTime,omitempty" example:"2024-09-06 15:30"`
	RestaurantOpen       *string `json:"restaurantOpen,omitempty" example:"09:00"`
	RestaurantClose      *string `json:"restaurantClose,omitempty" example:"22:00"`
	OrderAcceptOpen      *string `json:"orderAcceptOpen,omitempty" example:"09:30"`
	OrderAcceptClose     *string `json:"orderAcceptClose,omitempty" example:"20:30"`
	PickupMin            *Number `json:"pickupMin,omitempty" swaggertype:"integer" example:"15"`
	PickupMax            *Number `json:"pickupMax,omitempty" swaggertype:"integer" example:"30"`
	DeliveryMin          *Number `json:"deliveryMin,omitempty" swaggertype:"integer" example:"15"`
	DeliveryMax          *Number `json:"deliveryMax,omitempty" swaggertype:"integer" example:"60"`
	ServiceDuration      *string `json:"serviceDuration,omitempty" example:"10-30"`
	AllowedNextDaysOrder *Number `json:"allowedNextDaysOrder,omitempty" swaggertype:"integer" example:"1"`
	CurrentTime          *string `json:"currentTime,omitempty" example:"14:00"`
}

// Fields lists the present fields by JSON name. Absent fields have no key.
func (r *OrderTimeRequest) Fields() map[string]string {
	fields := make(map[string]string)
	put := func(name string, v *string) {
		if v != nil {
			fields[name] = *v
		}
	}
	putNumber := func(name string, v *Number) {
		if v != nil {
			fields[name] = string(*v)
		}
	}

	put(FieldOrderType, r.OrderType)
	put(FieldRequestedTime, r.RequestedTime)
	put(FieldRequestedDateTime, r.RequestedDateTime)
	put(FieldRestaurantOpen, r.RestaurantOpen)
	put(FieldRestaurantClose, r.RestaurantClose)
	put(FieldOrderAcceptOpen, r.OrderAcceptOpen)
	put(FieldOrderAcceptClose, r.OrderAcceptClose)
	putNumber(FieldPickupMin, r.PickupMin)
	putNumber(FieldPickupMax, r.PickupMax)
	putNumber(FieldDeliveryMin, r.DeliveryMin)
	putNumber(FieldDeliveryMax, r.DeliveryMax)
	put(FieldServiceDuration, r.ServiceDuration)
	putNumber(FieldAllowedNextDaysOrder, r.AllowedNextDaysOrder)
	put(FieldCurrentTime, r.CurrentTime)
	return fields
}

// ToDomain assumes the request already passed validation.
func (r *OrderTimeRequest) ToDomain() ordertime.ValidationRequest {
	req := ordertime.ValidationRequest{
		OrderType:         ordertime.OrderType(ptr.Deref(r.OrderType)),
		RequestedTime:     ptr.Deref(r.RequestedTime),
		RequestedDateTime: ptr.Deref(r.RequestedDateTime),
		RestaurantOpen:    ptr.Deref(r.RestaurantOpen),
		RestaurantClose:   ptr.Deref(r.RestaurantClose),
		OrderAcceptOpen:   ptr.Deref(r.OrderAcceptOpen),
		OrderAcceptClose:  ptr.Deref(r.OrderAcceptClose),
		PickupMin:         number(r.PickupMin),
		PickupMax:         number(r.PickupMax),
		DeliveryMin:       number(r.DeliveryMin),
		DeliveryMax:       number(r.DeliveryMax),
		ServiceDuration:   ptr.Deref(r.ServiceDuration),
		CurrentTime:       ptr.Deref(r.CurrentTime),
	}
	if r.AllowedNextDaysOrder != nil {
		req.AllowedNextDaysOrder = ptr.Of(number(r.AllowedNextDaysOrder))
	}
	return req
}

func number(n *Number) int {
	if n == nil {
		return 0
	}
	v, err := strconv.Atoi(string(*n))
	if err != nil {
		return 0
	}
	return v
}
