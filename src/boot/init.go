package boot

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"transferd/src/db"
	"transferd/src/lib"
	"transferd/src/models"
	"transferd/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Tariff{},
		&models.Vehicle{},
		&models.Advertisement{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob(WarmStatsCache, time.Hour)
	if err != nil {
		log.Printf("Error scheduling stats job: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled stats cache job: %s\n", *id)
	sched.Start()
}

// WarmStatsCache recomputes the admin dashboard aggregates so the stats
// endpoint usually serves from cache.
func WarmStatsCache() {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	stats, err := utils.ComputeBookingStats()
	if err != nil {
		log.Printf("Error computing booking stats: %s\n", err.Error())
		return
	}
	b, err := json.Marshal(stats)
	if err != nil {
		log.Printf("Error encoding booking stats: %s\n", err.Error())
		return
	}
	if err := rd.Set(context.Background(), "admin:stats", string(b), 2*time.Hour).Err(); err != nil {
		log.Printf("[redis] Error updating stats cache: %s\n", err.Error())
	}
}
