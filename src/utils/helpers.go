package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"transferd/src/config"
	"transferd/src/db"
	"transferd/src/models"
	"transferd/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 30 * 24 * time.Hour

func GenerateToken(userID uint, email string, role string) (string, error) {
	secret := config.GetJWTSecret()
	if len(secret) == 0 {
		return "", errors.New("jwt secret is not configured")
	}
	claims := &types.Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(raw string) (*types.Claims, error) {
	secret := config.GetJWTSecret()
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}
	claims := &types.Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// ErrNoBearerToken means the X-Authorization header was absent or not a
// Bearer scheme, as opposed to carrying a token that failed to parse.
var ErrNoBearerToken = errors.New("missing bearer token")

// UserFromRequest decodes the caller's claims from the X-Authorization
// header. Any failure means "unauthenticated", never a fatal error.
func UserFromRequest(ctx *gin.Context) (*types.Claims, error) {
	header := ctx.GetHeader("X-Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, ErrNoBearerToken
	}
	return ParseToken(strings.TrimPrefix(header, "Bearer "))
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// FilterColumns intersects a request body with a column allow-list.
// Decoded JSON arrays and objects are wrapped so they bind as jsonb.
func FilterColumns(data map[string]any, allowed []string) map[string]any {
	updates := map[string]any{}
	for _, col := range allowed {
		v, ok := data[col]
		if !ok {
			continue
		}
		switch v.(type) {
		case []any, map[string]any:
			updates[col] = types.JSONBAny{Inner: v}
		default:
			updates[col] = v
		}
	}
	return updates
}

func ComputeBookingStats() (*types.BookingStats, error) {
	d := db.GetDb()
	var totals struct {
		TotalBookings     int64
		NewBookings       int64
		ConfirmedBookings int64
		CompletedBookings int64
		CancelledBookings int64
		TotalRevenue      float64
	}
	err := d.
		Model(&models.Booking{}).
		Select(`COUNT(*) AS total_bookings,
			COUNT(CASE WHEN status = 'new' THEN 1 END) AS new_bookings,
			COUNT(CASE WHEN status = 'confirmed' THEN 1 END) AS confirmed_bookings,
			COUNT(CASE WHEN status = 'completed' THEN 1 END) AS completed_bookings,
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_bookings,
			COALESCE(SUM(CASE WHEN status = 'completed' THEN total_price ELSE 0 END), 0) AS total_revenue`).
		Scan(&totals).
		Error
	if err != nil {
		return nil, err
	}

	var daily []struct {
		Date  time.Time
		Count int64
	}
	err = d.
		Model(&models.Booking{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count").
		Where("created_at >= CURRENT_DATE - INTERVAL '30 days'").
		Group("DATE(created_at)").
		Order("date DESC").
		Scan(&daily).
		Error
	if err != nil {
		return nil, err
	}

	stats := &types.BookingStats{
		TotalBookings:     totals.TotalBookings,
		NewBookings:       totals.NewBookings,
		ConfirmedBookings: totals.ConfirmedBookings,
		CompletedBookings: totals.CompletedBookings,
		CancelledBookings: totals.CancelledBookings,
		TotalRevenue:      totals.TotalRevenue,
		DailyBookings:     make([]types.DailyBookingCount, 0, len(daily)),
	}
	for _, row := range daily {
		stats.DailyBookings = append(stats.DailyBookings, types.DailyBookingCount{
			Date:  row.Date.Format(config.TRAVEL_DATE_FORMAT),
			Count: row.Count,
		})
	}
	return stats, nil
}
