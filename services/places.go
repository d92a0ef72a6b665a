package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/axrasp/start-burger/models"
)

const placeKeyTTL = 24 * time.Hour

// PlaceService is the coordinate cache: address string in, (lon, lat) out.
// Resolved pairs are stored forever in the places table; an optional redis
// front keeps hot addresses off the database. A successful resolution is
// never refreshed.
type PlaceService struct {
	db       *gorm.DB
	geocoder *Geocoder
	redis    *redis.Client
	mu       sync.Mutex
}

func NewPlaceService(db *gorm.DB, geocoder *Geocoder, redisClient *redis.Client) *PlaceService {
	return &PlaceService{
		db:       db,
		geocoder: geocoder,
		redis:    redisClient,
	}
}

// Locate returns cached coordinates for address, resolving and writing
// through on a miss. A row with only one coordinate set counts as a miss.
func (ps *PlaceService) Locate(ctx context.Context, address string) (lon, lat float64, err error) {
	if lon, lat, ok := ps.fromRedis(ctx, address); ok {
		return lon, lat, nil
	}

	var place models.Place
	err = ps.db.Where("address = ?", address).First(&place).Error
	if err == nil && place.Resolved() {
		ps.toRedis(ctx, address, *place.Lon, *place.Lat)
		return *place.Lon, *place.Lat, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, 0, err
	}

	// Serialize resolution so concurrent misses on one address do not
	// hammer the provider.
	ps.mu.Lock()
	defer ps.mu.Unlock()

	var recheck models.Place
	err = ps.db.Where("address = ?", address).First(&recheck).Error
	if err == nil && recheck.Resolved() {
		return *recheck.Lon, *recheck.Lat, nil
	}

	lon, lat, err = ps.geocoder.Resolve(address)
	if err != nil {
		return 0, 0, err
	}

	entry := models.Place{Address: address, Lon: &lon, Lat: &lat}
	upsert := ps.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"lon", "lat"}),
	}).Create(&entry)
	if upsert.Error != nil {
		return 0, 0, upsert.Error
	}

	ps.toRedis(ctx, address, lon, lat)
	return lon, lat, nil
}

func placeKey(address string) string {
	return "place:" + address
}

func (ps *PlaceService) fromRedis(ctx context.Context, address string) (lon, lat float64, ok bool) {
	if ps.redis == nil {
		return 0, 0, false
	}
	val, err := ps.redis.Get(ctx, placeKey(address)).Result()
	if err != nil {
		return 0, 0, false
	}
	parts := strings.Fields(val)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lon, lat, true
}

func (ps *PlaceService) toRedis(ctx context.Context, address string, lon, lat float64) {
	if ps.redis == nil {
		return
	}
	// Same "lon lat" layout the provider uses.
	ps.redis.Set(ctx, placeKey(address), fmt.Sprintf("%g %g", lon, lat), placeKeyTTL)
}
