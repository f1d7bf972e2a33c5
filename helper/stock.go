package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"case_empire/database"
	"case_empire/model"
)

// Kênh pub/sub cho cảnh báo tồn kho thấp
const StockAlertChannel = "alerts:stock"

type StockAlert struct {
	ProductId string `json:"productId"`
	Name      string `json:"name"`
	Sku       string `json:"sku"`
	Stock     int    `json:"stock"`
	MinStock  int    `json:"minStock"`
}

var stockScheduler gocron.Scheduler

func StartLowStockScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	stockScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(15*time.Minute),
		gocron.NewTask(ScanLowStock),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Low stock scheduler started (every 15m)")
}

func StopLowStockScheduler() {
	if stockScheduler != nil {
		stockScheduler.Shutdown()
	}
}

// ScanLowStock tìm sản phẩm dưới ngưỡng và đẩy cảnh báo lên Redis
func ScanLowStock() {
	var products []model.Product
	if err := database.DB.
		Where("stock < min_stock").
		Order("stock asc").
		Find(&products).Error; err != nil {
		log.Printf("low stock scan: %v", err)
		return
	}

	if len(products) == 0 || Redis == nil {
		return
	}

	for _, p := range products {
		alert := StockAlert{
			ProductId: p.ID,
			Name:      p.Name,
			Sku:       p.Sku,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
		}
		payload, err := json.Marshal(alert)
		if err != nil {
			continue
		}
		if err := Redis.Publish(context.Background(), StockAlertChannel, payload).Err(); err != nil {
			log.Printf("publish stock alert %s: %v", p.Sku, err)
		}
	}
	log.Printf("Low stock: %d product(s) below threshold", len(products))
}
