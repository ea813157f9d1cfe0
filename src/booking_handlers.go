package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"transferd/src/config"
	"transferd/src/db"
	"transferd/src/lib"
	"transferd/src/lib/mailer"
	"transferd/src/middlewares"
	"transferd/src/models"
	"transferd/src/types"
	"transferd/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errInvalidTariff = errors.New("Invalid tariff")

// bookingDetail is the get-by-id row: the booking columns flattened together
// with the joined tariff and vehicle display fields.
type bookingDetail struct {
	models.Booking
	TariffName  *string          `json:"tariff_name"`
	Category    *string          `json:"category"`
	Features    types.StringList `json:"features"`
	VehicleName *string          `json:"vehicle_name"`
	Model       *string          `json:"model"`
}

func guestName(body *types.CreateBookingRequestBody) string {
	if body.GuestName != "" {
		return body.GuestName
	}
	return body.Name
}

func guestPhone(body *types.CreateBookingRequestBody) string {
	if body.GuestPhone != "" {
		return body.GuestPhone
	}
	return body.Phone
}

func guestEmail(body *types.CreateBookingRequestBody) string {
	if body.GuestEmail != "" {
		return body.GuestEmail
	}
	return body.Email
}

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if body.FromLocation == "" || body.ToLocation == "" || body.TravelDate == "" || body.TravelTime == "" {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
				return
			}

			// Guest bookings are allowed; a valid token attaches the booking
			// to the caller's account instead.
			var userID *uint
			if claims, err := utils.UserFromRequest(ctx); err == nil {
				userID = &claims.UserID
			}
			if userID == nil && (guestName(&body) == "" || guestPhone(&body) == "") {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Guest name and phone are required for non-registered users"})
				return
			}

			passengers := body.Passengers
			if passengers < 1 {
				passengers = 1
			}
			paymentMethod := body.PaymentMethod
			if paymentMethod == "" {
				paymentMethod = types.PAYMENT_METHOD_DEFAULT
			}

			booking := models.Booking{
				UserID:        userID,
				GuestName:     guestName(&body),
				GuestPhone:    guestPhone(&body),
				GuestEmail:    guestEmail(&body),
				FromLocation:  body.FromLocation,
				ToLocation:    body.ToLocation,
				TravelDate:    body.TravelDate,
				TravelTime:    body.TravelTime,
				Passengers:    passengers,
				TariffID:      body.TariffID,
				Status:        types.BOOKING_NEW,
				PaymentStatus: types.PAYMENT_PENDING,
				PaymentMethod: paymentMethod,
				Notes:         body.Notes,
			}
			d := db.GetDb()
			err := d.Transaction(func(tx *gorm.DB) error {
				var tariff models.Tariff
				err := tx.
					Model(&models.Tariff{}).
					Select("base_price").
					Where("id = ? AND is_active = ?", body.TariffID, true).
					First(&tariff).
					Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errInvalidTariff
				}
				if err != nil {
					return err
				}
				booking.TotalPrice = tariff.BasePrice
				return tx.Create(&booking).Error
			})
			if err != nil {
				if errors.Is(err, errInvalidTariff) {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidTariff.Error()})
					return
				}
				log.Printf("Error creating booking: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create booking: %s", err.Error())})
				return
			}

			if email := guestEmail(&body); email != "" {
				go sendBookingConfirmation(email, &booking)
			}
			ctx.JSON(http.StatusOK, gin.H{
				"booking_id":  booking.ID,
				"status":      booking.Status,
				"total_price": booking.TotalPrice,
				"message":     "Booking created successfully",
			})
		}).
		GET("/bookings", middlewares.Authenticated, func(ctx *gin.Context) {
			role := ctx.GetString("role")
			userID := ctx.GetUint("id")

			schema := config.GetSchema()
			d := db.GetDb()
			query := d.
				Model(&models.Booking{}).
				Select(`bookings.id, bookings.from_location, bookings.to_location,
					bookings.travel_date, bookings.travel_time, bookings.passengers,
					t.name AS tariff_name, t.category AS category,
					bookings.total_price, bookings.status, bookings.payment_status,
					bookings.payment_method, bookings.created_at,
					COALESCE(u.full_name, bookings.guest_name) AS user_name,
					COALESCE(u.email, bookings.guest_email) AS user_email,
					COALESCE(u.phone, bookings.guest_phone) AS phone`).
				Joins(fmt.Sprintf("LEFT JOIN %s.tariffs t ON t.id = bookings.tariff_id", schema)).
				Joins(fmt.Sprintf("LEFT JOIN %s.users u ON u.id = bookings.user_id", schema))
			if role == types.ROLE_ADMIN {
				query = query.Limit(100)
			} else {
				query = query.Where("bookings.user_id = ?", userID)
			}

			var bookings []types.BookingSummary
			if err := query.
				Order("bookings.created_at DESC").
				Scan(&bookings).
				Error; err != nil {
				log.Printf("Error listing bookings: %s\n", err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to fetch bookings: %s", err.Error())})
				return
			}
			if bookings == nil {
				bookings = []types.BookingSummary{}
			}
			ctx.JSON(http.StatusOK, gin.H{"bookings": bookings})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
				return
			}
			d := db.GetDb()
			var booking models.Booking
			if err := d.
				Model(&models.Booking{}).
				Where("id = ?", params.ID).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}

			detail := bookingDetail{Booking: booking}
			var tariff models.Tariff
			if err := d.
				Model(&models.Tariff{}).
				Select("name", "category", "features").
				Where("id = ?", booking.TariffID).
				First(&tariff).
				Error; err == nil {
				detail.TariffName = &tariff.Name
				detail.Category = &tariff.Category
				detail.Features = tariff.Features
			}
			if booking.VehicleID != nil {
				var vehicle models.Vehicle
				if err := d.
					Model(&models.Vehicle{}).
					Select("name", "model").
					Where("id = ?", *booking.VehicleID).
					First(&vehicle).
					Error; err == nil {
					detail.VehicleName = &vehicle.Name
					detail.Model = &vehicle.Model
				}
			}
			ctx.JSON(http.StatusOK, detail)
		}).
		PUT("/bookings/:id", middlewares.AdminOnly, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
				return
			}
			var data map[string]any
			if err := ctx.ShouldBindJSON(&data); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := utils.FilterColumns(data, []string{"status", "payment_status", "vehicle_id", "notes"})
			if len(updates) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
				return
			}

			var rows int64
			d := db.GetDb()
			err := d.Transaction(func(tx *gorm.DB) error {
				result := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID).
					Updates(updates)
				rows = result.RowsAffected
				return result.Error
			})
			if err != nil {
				log.Printf("Error updating booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to update booking: %s", err.Error())})
				return
			}
			if rows == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}

			var booking models.Booking
			if err := d.
				Model(&models.Booking{}).
				Where("id = ?", params.ID).
				First(&booking).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"booking_id":     booking.ID,
				"status":         booking.Status,
				"payment_status": booking.PaymentStatus,
				"message":        "Booking updated",
			})
		}).
		DELETE("/bookings/:id", middlewares.Authenticated, func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
				return
			}
			role := ctx.GetString("role")
			userID := ctx.GetUint("id")

			var rows int64
			d := db.GetDb()
			err := d.Transaction(func(tx *gorm.DB) error {
				query := tx.
					Model(&models.Booking{}).
					Where("id = ?", params.ID)
				if role != types.ROLE_ADMIN {
					query = query.Where("user_id = ?", userID)
				}
				result := query.Updates(map[string]any{"status": types.BOOKING_CANCELLED})
				rows = result.RowsAffected
				return result.Error
			})
			if err != nil {
				log.Printf("Error cancelling booking [%d]: %s\n", params.ID, err.Error())
				ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to cancel booking: %s", err.Error())})
				return
			}
			if rows == 0 {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "Booking not found or access denied"})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
		})
	return g
}

func sendBookingConfirmation(email string, booking *models.Booking) {
	body := fmt.Sprintf(
		"Your transfer from %s to %s on %s at %s has been received.\nBooking reference: %d\nEstimated price: %.2f",
		booking.FromLocation, booking.ToLocation, booking.TravelDate, booking.TravelTime, booking.ID, booking.TotalPrice,
	)
	err := mailer.NewMailerMessage(&lib.SendMailInput{
		From:     config.GetSMTPFrom(),
		FromName: "Transfer Bookings",
		To:       []string{email},
		Subject:  "Booking received",
		Body:     body,
	})
	if err != nil {
		log.Printf("Could not queue confirmation for booking [%d]: %s\n", booking.ID, err.Error())
	}
}
