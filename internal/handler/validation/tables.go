package validation

import (
	"strconv"

	"order-time-checker/internal/domain/ordertime"
	reqdto "order-time-checker/internal/handler/dto/request"
)

func required(field string) Rule {
	return Rule{Field: field, Tag: "required", Message: field + " is required."}
}

func hhmm(field string) Rule {
	return Rule{Field: field, Tag: TagHHMM, Message: field + " must be in the format HH:mm."}
}

func closesAfter(closeField, openField string) Rule {
	return Rule{
		Field:     closeField,
		Tag:       TagTimeAfter,
		DependsOn: openField,
		Message:   closeField + " must be greater than " + openField + ".",
	}
}

func minutes(field string) []Rule {
	return []Rule{
		required(field),
		{Field: field, Tag: TagInteger, Message: field + " must be an integer."},
		{Field: field, Tag: TagIntMin + "=0", Message: field + " must be at least 0."},
		{Field: field, Tag: TagIntMax + "=" + maxLead, Message: field + " must be at most " + maxLead + "."},
	}
}

var maxLead = strconv.Itoa(ordertime.MaxLeadMinutes)

func requiredWith(field, other string) Rule {
	return Rule{
		Field:     field,
		Tag:       TagRequiredWith,
		DependsOn: other,
		Message:   field + " is required when " + other + " is given.",
	}
}

func maxMinutes(maxField, minField string) []Rule {
	return append(minutes(maxField), Rule{
		Field:     maxField,
		Tag:       TagIntGTEField,
		DependsOn: minField,
		Message:   maxField + " must be greater than or equal to " + minField + ".",
	})
}

var currentTimeRule = Rule{
	Field:   reqdto.FieldCurrentTime,
	Tag:     TagHHMMOrDateTime,
	Message: reqdto.FieldCurrentTime + " must be in the format HH:mm or YYYY-MM-DD HH:mm.",
}

// PickupDeliveryTable validates requests carrying a bare requestedTime.
// Both windows must close after they open on the same day.
var PickupDeliveryTable = concat(
	[]Rule{
		required(reqdto.FieldOrderType),
		{
			Field:   reqdto.FieldOrderType,
			Tag:     "oneof=pickup delivery",
			Message: `orderType must be either "pickup" or "delivery".`,
		},
		required(reqdto.FieldRequestedTime),
		hhmm(reqdto.FieldRequestedTime),
		required(reqdto.FieldRestaurantOpen),
		hhmm(reqdto.FieldRestaurantOpen),
		required(reqdto.FieldRestaurantClose),
		hhmm(reqdto.FieldRestaurantClose),
		closesAfter(reqdto.FieldRestaurantClose, reqdto.FieldRestaurantOpen),
		required(reqdto.FieldOrderAcceptOpen),
		hhmm(reqdto.FieldOrderAcceptOpen),
		required(reqdto.FieldOrderAcceptClose),
		hhmm(reqdto.FieldOrderAcceptClose),
		closesAfter(reqdto.FieldOrderAcceptClose, reqdto.FieldOrderAcceptOpen),
	},
	minutes(reqdto.FieldPickupMin),
	maxMinutes(reqdto.FieldPickupMax, reqdto.FieldPickupMin),
	minutes(reqdto.FieldDeliveryMin),
	maxMinutes(reqdto.FieldDeliveryMax, reqdto.FieldDeliveryMin),
	[]Rule{currentTimeRule},
)

// DateTimeTable validates requests carrying requestedDateTime. Windows may wrap
// past midnight, so there is no close-after-open rule. Restaurant hours are optional
// but come as a pair.
var DateTimeTable = Table{
	required(reqdto.FieldRequestedDateTime),
	{
		Field:   reqdto.FieldRequestedDateTime,
		Tag:     TagDateTime,
		Message: reqdto.FieldRequestedDateTime + " must be in the format YYYY-MM-DD HH:mm.",
	},
	requiredWith(reqdto.FieldRestaurantOpen, reqdto.FieldRestaurantClose),
	hhmm(reqdto.FieldRestaurantOpen),
	requiredWith(reqdto.FieldRestaurantClose, reqdto.FieldRestaurantOpen),
	hhmm(reqdto.FieldRestaurantClose),
	required(reqdto.FieldOrderAcceptOpen),
	hhmm(reqdto.FieldOrderAcceptOpen),
	required(reqdto.FieldOrderAcceptClose),
	hhmm(reqdto.FieldOrderAcceptClose),
	required(reqdto.FieldServiceDuration),
	{
		Field:   reqdto.FieldServiceDuration,
		Tag:     TagDurationRange,
		Message: `serviceDuration must be in the format "min-max" or "max-min", where both are positive numbers.`,
	},
	{Field: reqdto.FieldAllowedNextDaysOrder, Tag: TagInteger, Message: "allowedNextDaysOrder must be an integer."},
	{Field: reqdto.FieldAllowedNextDaysOrder, Tag: TagIntMin + "=1", Message: "allowedNextDaysOrder must be at least 1."},
	currentTimeRule,
}

func concat(groups ...[]Rule) Table {
	var t Table
	for _, g := range groups {
		t = append(t, g...)
	}
	return t
}

// Detect picks the variant a request is validated and evaluated as.
// requestedDateTime wins; without either requested field, serviceDuration
// hints at the date-aware shape.
func Detect(fields map[string]string) ordertime.Variant {
	if _, ok := fields[reqdto.FieldRequestedDateTime]; ok {
		return ordertime.VariantDateTime
	}
	if _, ok := fields[reqdto.FieldRequestedTime]; ok {
		return ordertime.VariantPickupDelivery
	}
	if _, ok := fields[reqdto.FieldServiceDuration]; ok {
		return ordertime.VariantDateTime
	}
	return ordertime.VariantPickupDelivery
}

func TableFor(variant ordertime.Variant) Table {
	if variant == ordertime.VariantDateTime {
		return DateTimeTable
	}
	return PickupDeliveryTable
}

// ValidateRequest detects the variant of fields and applies its table.
func (v *Validator) ValidateRequest(fields map[string]string) (ordertime.Variant, []string) {
	variant := Detect(fields)
	messages := v.Validate(TableFor(variant), fields)
	_, hasTime := fields[reqdto.FieldRequestedTime]
	_, hasDateTime := fields[reqdto.FieldRequestedDateTime]
	if hasTime && hasDateTime {
		messages = append([]string{"requestedTime and requestedDateTime cannot be used together."}, messages...)
	}
	return variant, messages
}
