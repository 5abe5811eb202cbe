package main

import (
	"log"
	"os"
	"time"

	"foodhub/config"
	"foodhub/internal/completion"
	"foodhub/internal/service"
	"foodhub/internal/storage"

	httpapi "foodhub/internal/api/http"
)

func initStore() storage.Store {
	backend := config.Getenv("STORE_BACKEND", "mongo")
	switch backend {
	case "mongo":
		return storage.NewMongoStore(config.MustInitMongo())
	case "file":
		store, err := storage.NewFileStore(config.Getenv("DATA_DIR", "./data"))
		if err != nil {
			log.Fatal("Failed to open file store:", err)
		}
		return store
	case "postgres":
		store, err := storage.NewPostgresStore(config.MustInitPostgres())
		if err != nil {
			log.Fatal("Failed to open postgres store:", err)
		}
		return store
	case "pebble":
		store, err := storage.NewPebbleStore(config.Getenv("PEBBLE_DIR", "./pebble"))
		if err != nil {
			log.Fatal("Failed to open pebble store:", err)
		}
		return store
	default:
		log.Fatalf("Unknown STORE_BACKEND %q", backend)
		return nil
	}
}

func main() {
	store := initStore()

	var menuCache service.MenuCache
	if os.Getenv("REDIS_HOST") != "" {
		menuCache = storage.NewMenuCache(config.MustInitRedis(), 5*time.Minute)
	}

	var publisher service.EventPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("order-events")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	notifier := service.NewNotifier()
	menu := service.NewMenuService(storage.NewMenuRepository(store), menuCache)
	orders := service.NewOrderService(
		storage.NewOrderRepository(store),
		menu,
		notifier,
		publisher,
		service.OrderServiceOptions{
			IDMode:         config.Getenv("ORDER_ID_MODE", service.IDModeUUID),
			StrictStatuses: os.Getenv("STATUS_POLICY") == "strict",
		},
	)

	var completer service.CompletionClient
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		completer = completion.NewOpenAIClient(key, os.Getenv("OPENAI_BASE_URL"))
	}
	chat := service.NewChatService(completer)

	handler := httpapi.NewHandler(menu, orders, chat, notifier, service.DefaultQRGenerator{
		BaseURL: config.Getenv("QR_BASE_URL", "http://localhost:8080"),
	})

	addr := ":" + config.Getenv("PORT", "8080")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
