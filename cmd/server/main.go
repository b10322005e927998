package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/flushfinder/flushfinder/internal/config"
	"github.com/flushfinder/flushfinder/internal/database"
	"github.com/flushfinder/flushfinder/internal/handler"
	"github.com/flushfinder/flushfinder/internal/middleware"
	"github.com/flushfinder/flushfinder/internal/queue"
	"github.com/flushfinder/flushfinder/internal/repository"
	"github.com/flushfinder/flushfinder/internal/router"
	"github.com/flushfinder/flushfinder/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	reviews := repository.NewReviewRepo(db, users)
	rooms := repository.NewRoomRepo(db)
	buildings := repository.NewBuildingRepo(db)
	agg := service.NewAggregator(buildings, rooms, reviews)

	e := echo.New()
	ratelimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())
	router.Register(e,
		&handler.BuildingHandler{Agg: agg},
		&handler.RoomHandler{Agg: agg},
		&handler.ReviewHandler{Reviews: reviews, Rooms: rooms},
		ratelimit,
	)

	// Background consumer that appends submitted reviews to logs/reviews.log.
	// It reconnects on its own; a broker outage never affects requests.
	go func() {
		if err := queue.StartReviewConsumer(); err != nil {
			log.Printf("review consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
