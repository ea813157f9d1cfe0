package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"transferd/src/db"
	"transferd/src/lib"
	"transferd/src/models"

	"github.com/gin-gonic/gin"
)

const catalogCacheTTL = 5 * time.Minute

func catalogCacheKey(name string) string {
	return "catalog:" + name
}

func invalidateCatalogCache(name string) {
	rd := lib.GetRedisClient()
	if rd == nil {
		return
	}
	if err := rd.Del(context.Background(), catalogCacheKey(name)).Err(); err != nil {
		log.Printf("[redis] Error invalidating %s cache: %s\n", name, err.Error())
	}
}

// serveCatalog lists the active rows of one public resource, read-through
// cached so the landing page does not hit postgres on every load.
func serveCatalog(ctx *gin.Context, name string, order string, list any) {
	rd := lib.GetRedisClient()
	if rd != nil {
		if val, err := rd.Get(context.Background(), catalogCacheKey(name)).Result(); err == nil && val != "" {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
			return
		}
	}

	d := db.GetDb()
	if err := d.
		Where("is_active = ?", true).
		Order(order).
		Find(list).
		Error; err != nil {
		log.Printf("Error listing %s: %s\n", name, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to fetch %s: %s", name, err.Error())})
		return
	}

	payload := gin.H{name: list}
	if rd != nil {
		go func() {
			b, err := json.Marshal(payload)
			if err != nil {
				return
			}
			if err := rd.SetEx(context.Background(), catalogCacheKey(name), string(b), catalogCacheTTL).Err(); err != nil {
				log.Printf("[redis] Error caching %s: %s\n", name, err.Error())
			}
		}()
	}
	ctx.JSON(http.StatusOK, payload)
}

func publicHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/tariffs", func(ctx *gin.Context) {
			serveCatalog(ctx, "tariffs", "base_price", &[]models.Tariff{})
		}).
		GET("/vehicles", func(ctx *gin.Context) {
			serveCatalog(ctx, "vehicles", "created_at DESC", &[]models.Vehicle{})
		}).
		GET("/advertisements", func(ctx *gin.Context) {
			serveCatalog(ctx, "advertisements", "display_order, created_at DESC", &[]models.Advertisement{})
		})
	return g
}
