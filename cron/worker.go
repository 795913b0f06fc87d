package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"roadbuddy/config"
	"roadbuddy/services/chat"
	"roadbuddy/services/ride"
	"roadbuddy/services/user"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeSweepExpired = "sweep:expired"

// SweepDeps are the components the expiry cascade touches.
type SweepDeps struct {
	Rides    ride.RideService
	Users    user.UserService
	Chats    chat.RideChatService
	Messages chat.MessageService
}

// InitSweepWorker schedules the periodic expired-ride sweep and runs the
// async worker in background.
func InitSweepWorker(deps SweepDeps) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// One sweep at a time; overlapping sweeps would race on the
			// same ride documents.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSweepExpired, handleSweepTask(deps))

	interval := config.AppConfig.SweepIntervalMinutes
	if interval <= 0 {
		interval = 10
	}
	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", interval),
		asynq.NewTask(TypeSweepExpired, nil),
	); err != nil {
		log.Fatalf("[SweepWorker] Failed to register sweep schedule: %v", err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[SweepWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SweepWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SweepWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SweepWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleSweepTask deletes every ride whose departure has passed and cascades
// over the owner's posted list, the passengers' joined lists, the chat
// messages and the chat. Passengers are not notified.
func handleSweepTask(deps SweepDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		swept, err := deps.Rides.SweepExpired(ctx)
		if err != nil {
			log.Printf("[SweepHandler] Sweep failed: %v", err)
			return err
		}
		if len(swept) == 0 {
			return nil
		}

		for _, expired := range swept {
			log.Printf("[SweepHandler] Deleting expired ride %s", expired.ID)

			if err := deps.Users.RemovePostedRide(ctx, expired.OwnerID, expired.ID); err != nil {
				log.Printf("[SweepHandler] Failed to remove posted ride %s from owner: %v", expired.ID, err)
			}
			for _, passengerID := range expired.CurrentPassengers {
				if err := deps.Users.RemoveJoinedRide(ctx, passengerID, expired.ID); err != nil {
					log.Printf("[SweepHandler] Failed to remove joined ride %s from passenger %s: %v", expired.ID, passengerID, err)
				}
			}
			if err := deps.Messages.DeleteAllMessages(ctx, expired.ID); err != nil {
				log.Printf("[SweepHandler] Failed to delete messages of ride %s: %v", expired.ID, err)
			}
			if err := deps.Chats.DeleteChat(ctx, expired.ID); err != nil {
				log.Printf("[SweepHandler] Failed to delete chat of ride %s: %v", expired.ID, err)
			}
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SweepWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
