package state

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/weblarek/storefront/internal/events"
	"github.com/weblarek/storefront/internal/models"
)

// ErrIncompleteDraft is returned when a request DTO is built from a draft
// that does not pass full validation.
var ErrIncompleteDraft = errors.New("order draft is incomplete")

// Exact format checks matching the fixed UI input masks, deliberately
// stricter than general RFC validation.
var (
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneMask  = regexp.MustCompile(`^\+7 ?\(\d{3}\) ?\d{3}-\d{2}-\d{2}$`)
)

// draftValidate is shared by all OrderModel instances.
var draftValidate = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, "phonemask", func(fl validator.FieldLevel) bool {
		return phoneMask.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

type orderData struct {
	Payment models.PaymentMethod `validate:"required,oneof=card cash online"`
	Address string               `validate:"required,notblank"`
	Email   string               `validate:"required,emailshape"`
	Phone   string               `validate:"required,phonemask"`
}

var draftMessages = map[string]string{
	"payment": "Select a payment method",
	"address": "Enter a delivery address",
	"email":   "Enter a valid email",
	"phone":   "Enter a valid phone number",
}

// OrderModel owns the in-progress order draft. Fields fill incrementally
// from UI events; validation is staged per checkout screen (shipping, then
// contacts) and transitions are driven by the setters, not by explicit
// phase changes.
type OrderModel struct {
	model[orderData]
	attached []models.BasketItem
}

func NewOrderModel(bus *events.Bus) *OrderModel {
	return &OrderModel{model: newModel(bus, orderData{})}
}

func (m *OrderModel) SetPayment(method models.PaymentMethod) {
	d := m.data
	d.Payment = method
	m.setData(d)
	m.emitChanged(m.ValidateOrderStep())
}

func (m *OrderModel) SetAddress(address string) {
	d := m.data
	d.Address = address
	m.setData(d)
	m.emitChanged(m.ValidateOrderStep())
}

// SetContacts writes both contact fields verbatim; the contacts form emits
// the full pair on every input, so an empty value clears the field.
func (m *OrderModel) SetContacts(email, phone string) {
	d := m.data
	d.Email = email
	d.Phone = phone
	m.setData(d)
	m.emitChanged(m.Validate())
}

// AttachBasket snapshots the basket items the request total is computed
// from. The copy keeps later basket mutations from aliasing into the draft.
func (m *OrderModel) AttachBasket(items []models.BasketItem) {
	m.attached = make([]models.BasketItem, len(items))
	copy(m.attached, items)
}

// Validate checks all four draft fields.
func (m *OrderModel) Validate() models.ValidationResult {
	return m.collect(draftValidate.Struct(m.data))
}

// ValidateOrderStep checks only the shipping screen fields. Contact values
// never influence the result.
func (m *OrderModel) ValidateOrderStep() models.ValidationResult {
	return m.collect(draftValidate.StructPartial(m.data, "Payment", "Address"))
}

// ValidateContactsStep checks only the contact screen fields.
func (m *OrderModel) ValidateContactsStep() models.ValidationResult {
	return m.collect(draftValidate.StructPartial(m.data, "Email", "Phone"))
}

func (m *OrderModel) collect(err error) models.ValidationResult {
	res := models.ValidationResult{Valid: true, Errors: map[string]string{}}
	if err == nil {
		return res
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Valid = false
		return res
	}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		res.Errors[field] = draftMessages[field]
	}
	res.Valid = len(res.Errors) == 0
	return res
}

// ToOrderRequest maps the draft plus the attached basket snapshot to the
// backend payload. Card payments are remapped to "online" for backend
// compatibility; cash passes through unchanged. An incomplete draft fails
// fast instead of producing a malformed request.
func (m *OrderModel) ToOrderRequest() (models.OrderRequest, error) {
	if v := m.Validate(); !v.Valid {
		return models.OrderRequest{}, ErrIncompleteDraft
	}

	ids := make([]string, len(m.attached))
	var total float64
	for i, it := range m.attached {
		ids[i] = it.Product.ID
		if it.Product.Price != nil {
			total += *it.Product.Price
		}
	}

	payment := m.data.Payment
	if payment == models.PaymentCard {
		payment = models.PaymentOnline
	}

	return models.OrderRequest{
		Items:   ids,
		Payment: string(payment),
		Address: m.data.Address,
		Email:   m.data.Email,
		Phone:   m.data.Phone,
		Total:   total,
	}, nil
}

// Reset clears the draft and the attached snapshot without emitting. Hosts
// call it when the checkout modal closes; the coordinator calls it after a
// successful submission.
func (m *OrderModel) Reset() {
	m.setData(orderData{})
	m.attached = nil
}

func (m *OrderModel) Payment() models.PaymentMethod { return m.data.Payment }
func (m *OrderModel) Address() string               { return m.data.Address }
func (m *OrderModel) Email() string                 { return m.data.Email }
func (m *OrderModel) Phone() string                 { return m.data.Phone }

func (m *OrderModel) emitChanged(v models.ValidationResult) {
	m.emit(events.OrderChanged, events.OrderState{
		Payment: m.data.Payment,
		Address: m.data.Address,
		Email:   m.data.Email,
		Phone:   m.data.Phone,
		Valid:   v.Valid,
		Errors:  v.Errors,
	})
}
