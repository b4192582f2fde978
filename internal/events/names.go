package events

// Event names are the wire contract between models, coordinator and views.
const (
	AppReady = "app:ready"
	AppError = "app:error"

	CatalogLoad   = "catalog:load"
	CatalogLoaded = "catalog:loaded"
	CatalogError  = "catalog:error"

	CardSelect       = "card:select"
	CardAddToBasket  = "card:add-to-basket"
	CardToggleBasket = "card:toggle-basket"

	BasketOpen    = "basket:open"
	BasketRemove  = "basket:remove"
	BasketChanged = "basket:changed"

	OrderOpen    = "order:open"
	OrderUpdate  = "order:update"
	OrderChanged = "order:changed"
	OrderSubmit  = "order:submit"
	OrderSuccess = "order:success"
	OrderError   = "order:error"

	ContactsUpdate = "contacts:update"
	ContactsSubmit = "contacts:submit"

	ModalOpen  = "modal:open"
	ModalClose = "modal:close"
)
