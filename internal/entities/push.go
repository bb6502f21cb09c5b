package entities

type PushCategory int

const (
	PushNewOrder     PushCategory = 0
	PushOrderUpdated PushCategory = 1
)

// OrderPush push-уведомление со снимком заказа для набора устройств.
type OrderPush struct {
	DeviceIDs []string
	Category  PushCategory
	Order     Order
}
