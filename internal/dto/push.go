package dto

// PushData data-часть push-уведомления: категория и плоский снимок заказа.
type PushData struct {
	MessageCategory int `json:"messageCategory"`
	Order
}

// PushRequest сообщение в топике push-запросов.
type PushRequest struct {
	DeviceIDs []string `json:"deviceIds"`
	Data      PushData `json:"data"`
}
