package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/axrasp/start-burger/models"
	"github.com/axrasp/start-burger/utils"
)

// RestaurantDistance is one dashboard row: a candidate restaurant and how
// far it is from the delivery address, rounded to two decimals.
type RestaurantDistance struct {
	Name       string  `json:"name"`
	DistanceKm float64 `json:"distance_km"`
}

// OrderRanking is the matching result for a single order. Unavailable means
// the delivery address could not be geocoded; Restaurants is nil then.
type OrderRanking struct {
	Restaurants []RestaurantDistance
	Unavailable bool
}

// MatcherService ranks the restaurants able to fulfil an entire order by
// distance to its delivery address.
type MatcherService struct {
	db     *gorm.DB
	menu   *MenuIndex
	places *PlaceService
}

func NewMatcherService(db *gorm.DB, menu *MenuIndex, places *PlaceService) *MatcherService {
	return &MatcherService{db: db, menu: menu, places: places}
}

// RankOrder finds every restaurant whose available menu covers all of the
// order's products and sorts them by distance. A geocoding failure on the
// delivery address degrades the whole order to Unavailable; a failure on a
// single restaurant only drops that restaurant from the ranking.
func (ms *MatcherService) RankOrder(ctx context.Context, order *models.Order) (OrderRanking, error) {
	productIDs := make([]uint, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	candidates, err := ms.menu.RestaurantsOffering(productIDs)
	if err != nil {
		return OrderRanking{}, err
	}

	orderLon, orderLat, err := ms.places.Locate(ctx, order.Address)
	if err != nil {
		if GeocodeFailed(err) {
			utils.ErrorLogger.Printf("order %d: cannot geocode delivery address %q: %v",
				order.ID, order.Address, err)
			return OrderRanking{Unavailable: true}, nil
		}
		return OrderRanking{}, err
	}

	distances := make([]RestaurantDistance, 0, len(candidates))
	for i := range candidates {
		restLon, restLat, err := ms.restaurantCoords(ctx, &candidates[i])
		if err != nil {
			if GeocodeFailed(err) {
				utils.ErrorLogger.Printf("order %d: cannot geocode restaurant %q: %v",
					order.ID, candidates[i].Name, err)
				continue
			}
			return OrderRanking{}, err
		}
		distances = append(distances, RestaurantDistance{
			Name:       candidates[i].Name,
			DistanceKm: Round2(DistanceKm(orderLon, orderLat, restLon, restLat)),
		})
	}

	sortByDistance(distances)
	return OrderRanking{Restaurants: distances}, nil
}

// restaurantCoords returns the restaurant's coordinates, resolving and
// persisting them on first use.
func (ms *MatcherService) restaurantCoords(ctx context.Context, rest *models.Restaurant) (lon, lat float64, err error) {
	if rest.Lon != nil && rest.Lat != nil {
		return *rest.Lon, *rest.Lat, nil
	}

	lon, lat, err = ms.places.Locate(ctx, rest.Address)
	if err != nil {
		return 0, 0, err
	}

	rest.Lon = &lon
	rest.Lat = &lat
	if err := ms.db.Model(rest).Updates(map[string]interface{}{"lon": lon, "lat": lat}).Error; err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}

// sortByDistance orders ascending, keeping the incoming (insertion) order
// for equal distances.
func sortByDistance(list []RestaurantDistance) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].DistanceKm < list[j].DistanceKm
	})
}
