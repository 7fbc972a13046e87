package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"RentMe/models"
	"RentMe/util"
)

const ERR_WHILE_FETCHING_APARTMENT string = "Error from findOne while fetching apartment: "

/*
* Matches the apartment only while it still has a free seat.
* "tenants.2" existing means the list already holds three entries.
 */
func apartmentSeatFilter(apartmentID string) bson.M {
	lastSeat := fmt.Sprintf("tenants.%d", util.MaxTenantsPerApartment-1)
	return bson.M{
		"apartmentID": apartmentID,
		lastSeat:      bson.M{"$exists": false},
	}
}

type seatDecision int

const (
	seatClaimed seatDecision = iota
	seatUnavailable
	seatCreate
)

/*
* A matched conditional update means the seat is taken. Nothing
* matched and the apartment exists means it is full, otherwise the
* apartment has to be created around the tenant.
 */
func decideSeatClaim(matchedCount int64, apartmentExists bool) seatDecision {
	if matchedCount > 0 {
		return seatClaimed
	}
	if apartmentExists {
		return seatUnavailable
	}
	return seatCreate
}

func invalidateApartmentCache(c *gin.Context, apartmentID string) {
	key := util.ApartmentKey + apartmentID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting apartment cache:", err)
	}
}

/*
ClaimApartmentSeat appends the tenant to the apartment, creating the
apartment lazily if the identifier is unused.

The capacity check and the append are one conditional update, so the
check cannot race another registration for the same apartment. When the
update matches nothing the apartment is either full or absent; a count
decides which. The lazy create can still race itself, which the unique
index on apartmentID turns into an insert error, and the claim is then
retried once against the now existing document. Every path that changes
the tenant list drops the cached apartment document.
*/
func ClaimApartmentSeat(c *gin.Context, apartmentID string, tenantID string) error {
	collection := db.OpenCollections(util.ApartmentCollection)
	push := bson.M{
		"$push": bson.M{"tenants": tenantID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	res, err := db.UpdateOne(c, collection, apartmentSeatFilter(apartmentID), push)
	if err != nil {
		log.Println("Error from updateOne while claiming seat:", err)
		return err
	}

	exists := res.MatchedCount > 0
	if !exists {
		count, err := collection.CountDocuments(c, bson.M{"apartmentID": apartmentID})
		if err != nil {
			log.Println("Error from countDocuments:", err)
			return err
		}
		exists = count > 0
	}

	switch decideSeatClaim(res.MatchedCount, exists) {
	case seatClaimed:
		invalidateApartmentCache(c, apartmentID)
		return nil
	case seatUnavailable:
		return errors.New(util.APARTMENT_IS_FULL)
	}

	now := time.Now()
	apartment := bson.M{
		"apartmentID": apartmentID,
		"tenants":     []string{tenantID},
		"rentAmount":  float64(0),
		"createdAt":   now,
		"updatedAt":   now,
	}
	if _, err := db.CreateOne(c, collection, apartment); err != nil {
		log.Println("Error from createOne while creating apartment:", err)
		res, retryErr := db.UpdateOne(c, collection, apartmentSeatFilter(apartmentID), push)
		if retryErr != nil {
			return retryErr
		}
		if res.MatchedCount == 0 {
			return errors.New(util.APARTMENT_IS_FULL)
		}
		invalidateApartmentCache(c, apartmentID)
		return nil
	}

	key := util.ApartmentKey + apartmentID
	if err := redis.SetCache(c, key, apartment); err != nil {
		log.Println("Error from setCache:", err)
	}
	return nil
}

/*
* Get apartment from cache, if exists return apartment
* If not exists, fetch apartment from database
* Set in cache
 */
func FetchApartmentByID(c *gin.Context, apartmentID string) (models.Apartment, error) {
	key := util.ApartmentKey + apartmentID
	var cachedDoc map[string]interface{}
	exists, err := redis.GetCache(c, key, &cachedDoc)
	if err == nil && exists {
		var cached models.Apartment
		if decodeErr := decodeDocument(cachedDoc, &cached); decodeErr == nil {
			return cached, nil
		}
	}
	collection := db.OpenCollections(util.ApartmentCollection)
	var apartment models.Apartment
	err = db.FindOne(c, collection, bson.M{"apartmentID": apartmentID}, &apartment)
	if err != nil {
		log.Println(ERR_WHILE_FETCHING_APARTMENT, err)
		if isNoDocuments(err) {
			return models.Apartment{}, errors.New(util.APARTMENT_NOT_FOUND)
		}
		return models.Apartment{}, err
	}
	if err := redis.SetCache(c, key, apartment); err != nil {
		log.Println("Unable to set apartment in cache:", err)
	}
	return apartment, nil
}

/*
* Compensation for a failed tenant insert after the seat was claimed
 */
func ReleaseApartmentSeat(c *gin.Context, apartmentID string, tenantID string) error {
	collection := db.OpenCollections(util.ApartmentCollection)
	filter := bson.M{"apartmentID": apartmentID}
	update := bson.M{
		"$pull": bson.M{"tenants": tenantID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	_, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		return err
	}
	invalidateApartmentCache(c, apartmentID)
	return nil
}

/*
* Decode a raw document coming out of FindAll into a typed model
 */
func decodeDocument(doc interface{}, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

/*
FetchAllApartments returns every apartment with its tenant reference
list expanded to full tenant records. Dangling references are skipped
rather than failing the whole listing. Password hashes never leave the
service.
*/
func FetchAllApartments(c *gin.Context) ([]models.ApartmentDetails, error) {
	collection := db.OpenCollections(util.ApartmentCollection)
	docs, err := db.FindAll(c, collection, nil, nil)
	if err != nil {
		log.Println("Error from findAll while fetching apartments:", err)
		return nil, err
	}

	details := []models.ApartmentDetails{}
	for _, doc := range docs {
		var apartment models.Apartment
		if err := decodeDocument(doc, &apartment); err != nil {
			log.Println("Unable to decode apartment document:", err)
			continue
		}
		tenants, err := fetchTenantsByIDs(c, apartment.Tenants)
		if err != nil {
			log.Println("Error from fetchTenantsByIDs:", err)
			return nil, err
		}
		details = append(details, models.ApartmentDetails{
			ApartmentID: apartment.ApartmentID,
			Tenants:     tenants,
			RentAmount:  apartment.RentAmount,
		})
	}
	return details, nil
}

func fetchTenantsByIDs(c *gin.Context, tenantIDs []string) ([]models.Tenant, error) {
	tenants := []models.Tenant{}
	if len(tenantIDs) == 0 {
		return tenants, nil
	}
	collection := db.OpenCollections(util.TenantCollection)
	docs, err := db.FindAll(c, collection, bson.M{"id": bson.M{"$in": tenantIDs}}, nil)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		var tenant models.Tenant
		if err := decodeDocument(doc, &tenant); err != nil {
			log.Println("Unable to decode tenant document:", err)
			continue
		}
		tenant.Password = ""
		tenants = append(tenants, tenant)
	}
	return tenants, nil
}

/*
* Overwrite the rent amount for the apartment
* 404 when no apartment matches the identifier
 */
func UpdateRentAmount(c *gin.Context, apartmentID string, newRent float64) (models.Apartment, error) {
	collection := db.OpenCollections(util.ApartmentCollection)
	filter := bson.M{"apartmentID": apartmentID}
	update := bson.M{"$set": bson.M{"rentAmount": newRent, "updatedAt": time.Now()}}

	res, err := db.UpdateOne(c, collection, filter, update)
	if err != nil {
		log.Println("Error from updateOne:", err)
		return models.Apartment{}, err
	}
	if res.MatchedCount == 0 {
		return models.Apartment{}, errors.New(util.APARTMENT_NOT_FOUND)
	}

	// drop the stale entry so the read below refills the cache
	invalidateApartmentCache(c, apartmentID)

	updated, err := FetchApartmentByID(c, apartmentID)
	if err != nil {
		log.Println(ERR_WHILE_FETCHING_APARTMENT, err)
		return models.Apartment{}, err
	}
	return updated, nil
}
