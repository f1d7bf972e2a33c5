package handler

import (
	"context"
	"log"

	"github.com/gofiber/contrib/websocket"

	"case_empire/helper"
)

// StockAlertWebsocket đẩy cảnh báo tồn kho thấp cho dashboard đang mở.
// Mỗi connection tự subscribe kênh Redis, đóng WS thì thôi subscribe.
func StockAlertWebsocket(c *websocket.Conn) {
	defer c.Close()

	if helper.Redis == nil {
		return
	}

	pubsub := helper.Redis.Subscribe(context.Background(), helper.StockAlertChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			log.Printf("stock alert ws write: %v", err)
			return
		}
	}
}
