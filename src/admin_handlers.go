package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"transferd/src/db"
	"transferd/src/lib"
	"transferd/src/middlewares"
	"transferd/src/models"
	"transferd/src/types"
	"transferd/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// adminResource describes one CRUD resource behind the admin dispatcher.
// The three resources are structurally identical; only the model, the
// updatable column set and the creation payload differ.
type adminResource struct {
	label      string
	createdMsg string
	order      string
	columns    []string
	newModel   func() any
	newList    func() any
	create     func(ctx *gin.Context) (any, error)
}

var adminResources = map[string]*adminResource{
	"tariffs": {
		label:      "Tariff",
		createdMsg: "Tariff created",
		order:      "created_at DESC",
		columns:    []string{"name", "category", "description", "base_price", "price_per_km", "max_passengers", "features", "is_active"},
		newModel:   func() any { return &models.Tariff{} },
		newList:    func() any { return &[]models.Tariff{} },
		create: func(ctx *gin.Context) (any, error) {
			var body types.CreateTariffRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				return nil, err
			}
			isActive := true
			if body.IsActive != nil {
				isActive = *body.IsActive
			}
			return &models.Tariff{
				Name:          body.Name,
				Category:      body.Category,
				Description:   body.Description,
				BasePrice:     body.BasePrice,
				PricePerKm:    body.PricePerKm,
				MaxPassengers: body.MaxPassengers,
				Features:      body.Features,
				IsActive:      isActive,
			}, nil
		},
	},
	"vehicles": {
		label:      "Vehicle",
		createdMsg: "Vehicle added",
		order:      "created_at DESC",
		columns:    []string{"name", "model", "category", "seats", "image_url", "features", "is_active"},
		newModel:   func() any { return &models.Vehicle{} },
		newList:    func() any { return &[]models.Vehicle{} },
		create: func(ctx *gin.Context) (any, error) {
			var body types.CreateVehicleRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				return nil, err
			}
			isActive := true
			if body.IsActive != nil {
				isActive = *body.IsActive
			}
			return &models.Vehicle{
				Name:     body.Name,
				Model:    body.Model,
				Category: body.Category,
				Seats:    body.Seats,
				ImageURL: body.ImageURL,
				Features: body.Features,
				IsActive: isActive,
			}, nil
		},
	},
	"advertisements": {
		label:      "Advertisement",
		createdMsg: "Advertisement created",
		order:      "display_order, created_at DESC",
		columns:    []string{"title", "content", "image_url", "link_url", "position", "is_active", "display_order"},
		newModel:   func() any { return &models.Advertisement{} },
		newList:    func() any { return &[]models.Advertisement{} },
		create: func(ctx *gin.Context) (any, error) {
			var body types.CreateAdvertisementRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				return nil, err
			}
			isActive := true
			if body.IsActive != nil {
				isActive = *body.IsActive
			}
			return &models.Advertisement{
				Title:        body.Title,
				Content:      body.Content,
				ImageURL:     body.ImageURL,
				LinkURL:      body.LinkURL,
				Position:     body.Position,
				IsActive:     isActive,
				DisplayOrder: body.DisplayOrder,
			}, nil
		},
	},
}

func modelID(model any) uint {
	switch m := model.(type) {
	case *models.Tariff:
		return m.ID
	case *models.Vehicle:
		return m.ID
	case *models.Advertisement:
		return m.ID
	}
	return 0
}

func lookupResource(ctx *gin.Context) *adminResource {
	name := ctx.Param("resource")
	res, ok := adminResources[name]
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unknown resource"})
		return nil
	}
	return res
}

func itemID(ctx *gin.Context) (uint, bool) {
	atoi, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || atoi < 1 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(atoi), true
}

func adminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	admin := g.Group("/admin")
	admin.Use(middlewares.AdminOnly)
	admin.
		GET("/:resource", func(ctx *gin.Context) {
			if ctx.Param("resource") == "stats" {
				getStatistics(ctx)
				return
			}
			res := lookupResource(ctx)
			if res == nil {
				return
			}
			list := res.newList()
			db := db.GetDb()
			if err := db.
				Model(res.newModel()).
				Order(res.order).
				Find(list).
				Error; err != nil {
				log.Printf("Error listing %s: %s\n", res.label, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Operation failed: %s", err.Error())})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{ctx.Param("resource"): list})
		}).
		GET("/:resource/:id", func(ctx *gin.Context) {
			res := lookupResource(ctx)
			if res == nil {
				return
			}
			id, ok := itemID(ctx)
			if !ok {
				return
			}
			model := res.newModel()
			db := db.GetDb()
			if err := db.
				Model(model).
				Where("id = ?", id).
				First(model).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", res.label)})
				return
			}
			ctx.JSON(http.StatusOK, model)
		}).
		POST("/:resource", func(ctx *gin.Context) {
			res := lookupResource(ctx)
			if res == nil {
				return
			}
			model, err := res.create(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(model).Error
			}); err != nil {
				log.Printf("Error creating %s: %s\n", res.label, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Operation failed: %s", err.Error())})
				return
			}
			go invalidateCatalogCache(ctx.Param("resource"))
			ctx.JSON(http.StatusOK, gin.H{"id": modelID(model), "message": res.createdMsg})
		}).
		PUT("/:resource/:id", func(ctx *gin.Context) {
			res := lookupResource(ctx)
			if res == nil {
				return
			}
			id, ok := itemID(ctx)
			if !ok {
				return
			}
			var data map[string]any
			if err := ctx.ShouldBindJSON(&data); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := utils.FilterColumns(data, res.columns)
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
				return
			}
			var rows int64
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				result := tx.
					Model(res.newModel()).
					Where("id = ?", id).
					Updates(updates)
				rows = result.RowsAffected
				return result.Error
			}); err != nil {
				log.Printf("Error updating %s [%d]: %s\n", res.label, id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Operation failed: %s", err.Error())})
				return
			}
			if rows == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", res.label)})
				return
			}
			go invalidateCatalogCache(ctx.Param("resource"))
			ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s updated", res.label)})
		}).
		DELETE("/:resource/:id", func(ctx *gin.Context) {
			res := lookupResource(ctx)
			if res == nil {
				return
			}
			id, ok := itemID(ctx)
			if !ok {
				return
			}
			var rows int64
			db := db.GetDb()
			if err := db.Transaction(func(tx *gorm.DB) error {
				result := tx.Where("id = ?", id).Delete(res.newModel())
				rows = result.RowsAffected
				return result.Error
			}); err != nil {
				log.Printf("Error deleting %s [%d]: %s\n", res.label, id, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Operation failed: %s", err.Error())})
				return
			}
			if rows == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s not found", res.label)})
				return
			}
			go invalidateCatalogCache(ctx.Param("resource"))
			ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s deleted", res.label)})
		})
	return g
}

func getStatistics(ctx *gin.Context) {
	rd := lib.GetRedisClient()
	if rd != nil {
		if val, err := rd.Get(context.Background(), "admin:stats").Result(); err == nil && val != "" {
			ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
			return
		}
	}
	stats, err := utils.ComputeBookingStats()
	if err != nil {
		log.Printf("Error computing booking stats: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to fetch statistics: %s", err.Error())})
		return
	}
	if rd != nil {
		go func() {
			b, err := json.Marshal(stats)
			if err != nil {
				return
			}
			if err := rd.Set(context.Background(), "admin:stats", string(b), 5*time.Minute).Err(); err != nil {
				log.Printf("[redis] Error updating stats cache: %s\n", err.Error())
			}
		}()
	}
	ctx.JSON(http.StatusOK, stats)
}
