package boot

import (
	"context"
	"fmt"
	"log"
	"os"

	"travel/src/common"
	"travel/src/config"
	"travel/src/db"
	"travel/src/lib"
	"travel/src/storage"
)

// InitStorage picks the backend named by STORAGE_DRIVER.
func InitStorage(ctx context.Context) (storage.Storage, error) {
	switch config.STORAGE_DRIVER {
	case "postgres":
		s := storage.NewDBStorage(db.GetDb())
		if err := s.Migrate(ctx); err != nil {
			return nil, err
		}
		if err := s.Seed(ctx); err != nil {
			return nil, err
		}
		log.Println("[Storage] Using postgres")
		return s, nil
	case "memory", "":
		log.Println("[Storage] Using in-memory store")
		return storage.NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.STORAGE_DRIVER)
	}
}

// InitCache returns nil when redis is not configured, which disables caching.
func InitCache() *lib.CatalogCache {
	rd := lib.GetRedisClient()
	if rd == nil {
		return nil
	}
	return lib.NewCatalogCache(rd, config.CacheTTL())
}

func InitScheduler(store storage.Storage, cache *lib.CatalogCache) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if cache != nil {
		if _, err := lib.CreateCronJob("featured-cache", common.FeaturedCacheJob, config.CacheTTL(), store, cache); err != nil {
			log.Printf("Error scheduling cache refresh: %s\n", err.Error())
		}
	}
	sched.Start()
	log.Println("Jobs in queue:", len(sched.Jobs()))
}

// InitNotifier builds the notifiers listed in NOTIFIER. Ones that cannot be
// configured are skipped with a log line.
func InitNotifier(ctx context.Context) lib.Notifier {
	var notifiers lib.MultiNotifier
	for _, name := range config.Notifiers() {
		switch name {
		case "log":
			notifiers = append(notifiers, lib.LogNotifier{})
		case "sqs":
			if config.SQS_QUEUE_URL == "" {
				log.Println("[Notifier] SQS_QUEUE_URL is not set, skipping sqs")
				continue
			}
			client, err := lib.AWSGetSQSClient(ctx)
			if err != nil {
				continue
			}
			notifiers = append(notifiers, lib.NewSQSNotifier(client, config.SQS_QUEUE_URL))
		case "sns":
			if config.SNS_TOPIC_ARN == "" {
				log.Println("[Notifier] SNS_TOPIC_ARN is not set, skipping sns")
				continue
			}
			client, err := lib.AWSGetSNSClient(ctx)
			if err != nil {
				continue
			}
			notifiers = append(notifiers, lib.NewSNSNotifier(client, config.SNS_TOPIC_ARN))
		case "ses":
			client, err := lib.AWSGetSESClient(ctx)
			if err != nil {
				continue
			}
			notifiers = append(notifiers, lib.NewSESNotifier(client, config.MAIL_FROM, config.MAIL_FROM_NAME))
		case "kafka":
			if config.KAFKA_BROKER == "" {
				log.Println("[Notifier] KAFKA_BROKER is not set, skipping kafka")
				continue
			}
			hostname, _ := os.Hostname()
			k, err := lib.NewKafkaNotifier(config.KAFKA_BROKER, "travel-api-"+hostname, config.KAFKA_TOPIC)
			if err != nil {
				continue
			}
			notifiers = append(notifiers, k)
		case "smtp":
			client, err := lib.GetSMTPClient()
			if err != nil {
				continue
			}
			notifiers = append(notifiers, lib.NewMailNotifier(client, config.MAIL_FROM, config.MAIL_FROM_NAME))
		default:
			log.Printf("[Notifier] Unknown notifier %q\n", name)
		}
	}
	if len(notifiers) == 0 {
		return nil
	}
	names := make([]string, 0, len(notifiers))
	for _, n := range notifiers {
		names = append(names, n.Name())
	}
	log.Printf("[Notifier] Enabled: %v\n", names)
	return notifiers
}

// Shutdown releases background resources held by the notifier and scheduler.
func Shutdown(notifier lib.Notifier) {
	lib.StopScheduler()
	if multi, ok := notifier.(lib.MultiNotifier); ok {
		for _, n := range multi {
			if k, ok := n.(*lib.KafkaNotifier); ok {
				k.Close()
			}
		}
	}
}
