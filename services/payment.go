package services

import (
	"errors"
	"log"
	"sort"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"RentMe/models"
	"RentMe/util"
)

// RentPeriod is the fixed window a single payment covers.
const RentPeriod = 30 * 24 * time.Hour

func buildRentWindow(now time.Time) (time.Time, time.Time) {
	return now, now.Add(RentPeriod)
}

/*
ProcessPayment marks the tenant paid for the next 30 days and appends an
immutable payment record. The amount is recorded as given, it is not
checked against the apartment's rent. Any prior rent window is
overwritten.
*/
func ProcessPayment(c *gin.Context, tenantID string, amount float64) (time.Time, error) {
	collection := db.OpenCollections(util.TenantCollection)
	filter := bson.M{"id": tenantID}

	var tenant models.Tenant
	if err := db.FindOne(c, collection, filter, &tenant); err != nil {
		log.Println(ERR_WHILE_FETCHING_TENANT, err)
		if isNoDocuments(err) {
			return time.Time{}, errors.New(util.TENANT_NOT_FOUND)
		}
		return time.Time{}, err
	}

	rentStart, rentEnd := buildRentWindow(time.Now())
	update := bson.M{"$set": bson.M{
		"rentPaid":  true,
		"rentStart": rentStart,
		"rentEnd":   rentEnd,
		"updatedAt": rentStart,
	}}
	if _, err := db.UpdateOne(c, collection, filter, update); err != nil {
		log.Println("Error from updateOne while marking rent paid:", err)
		return time.Time{}, err
	}

	payment := bson.M{
		"tenantID": tenantID,
		"amount":   amount,
		"date":     rentStart,
	}
	payments := db.OpenCollections(util.PaymentCollection)
	if _, err := db.CreateOne(c, payments, payment); err != nil {
		log.Println("Error from createOne while saving payment:", err)
		return time.Time{}, err
	}

	key := util.TenantKey + tenantID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old tenant cache:", err)
	}
	return rentEnd, nil
}

/*
* All payment records for one tenant, oldest first
 */
func FetchPaymentsForTenant(c *gin.Context, tenantID string) ([]models.Payment, error) {
	collection := db.OpenCollections(util.PaymentCollection)
	docs, err := db.FindAll(c, collection, bson.M{"tenantID": tenantID}, nil)
	if err != nil {
		log.Println("Error from findAll while fetching payments:", err)
		return nil, err
	}
	payments := []models.Payment{}
	for _, doc := range docs {
		var payment models.Payment
		if err := decodeDocument(doc, &payment); err != nil {
			log.Println("Unable to decode payment document:", err)
			continue
		}
		payments = append(payments, payment)
	}
	sortPaymentsByDate(payments)
	return payments, nil
}

func sortPaymentsByDate(payments []models.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.Before(payments[j].Date)
	})
}
