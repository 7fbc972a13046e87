package services

import (
	"errors"
	"log"
	"strings"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	redis "github.com/KanapuramVaishnavi/Core/config/redis"
	common "github.com/KanapuramVaishnavi/Core/coreServices"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"RentMe/models"
	"RentMe/util"
)

const ERR_WHILE_FETCHING_TENANT string = "Error from findOne while fetching tenant: "

/*
* Only a findOne that found nothing maps to a 404, any other
* driver failure stays a persistence error
 */
func isNoDocuments(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, mongo.ErrNoDocuments) ||
		strings.Contains(err.Error(), mongo.ErrNoDocuments.Error())
}

/*
* Check that both name and password are present and non blank
* Trims them in place
 */
func validateRegisterInput(data map[string]interface{}) error {
	if err := common.GetTrimmedString(data, "name"); err != nil {
		log.Println("error from getTrimmedString for name:", err)
		return errors.New(util.NAME_NOT_PROVIDED)
	}
	if err := common.GetTrimmedString(data, "password"); err != nil {
		log.Println("error from getTrimmedString for password:", err)
		return errors.New(util.PASSWORD_NOT_PROVIDED)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

/*
* Compare the stored bcrypt hash against the input password
 */
func verifyPassword(dbPassword string, inputPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(dbPassword), []byte(inputPassword))
	if err != nil {
		return errors.New(util.INVALID_CREDENTIALS)
	}
	return nil
}

/*
RegisterTenant handles creating a Tenant.
It validates the input, generates the tenant and apartment identifiers,
claims a seat in the apartment, and inserts the tenant record into MongoDB.

The seat claim is a single conditional update so two concurrent
registrations can never push the apartment past capacity. The claim
happens before the tenant insert; if the insert fails the seat is
released again, so the apartment never references a tenant that was
not persisted.
*/
func RegisterTenant(c *gin.Context, data map[string]interface{}) (string, error) {

	if err := validateRegisterInput(data); err != nil {
		log.Println("Error from validateRegisterInput:", err)
		return "", err
	}

	hash, err := hashPassword(data["password"].(string))
	if err != nil {
		log.Println("Error from hashPassword:", err)
		return "", err
	}

	apartmentID, err := GenerateApartmentID()
	if err != nil {
		log.Println("Error from generateApartmentID:", err)
		return "", err
	}
	tenantID := GenerateTenantID()

	if err := ClaimApartmentSeat(c, apartmentID, tenantID); err != nil {
		log.Println("Error from claimApartmentSeat:", err)
		return "", err
	}

	now := time.Now()
	tenant := bson.M{
		"id":        tenantID,
		"name":      data["name"].(string),
		"password":  hash,
		"rentPaid":  false,
		"createdAt": now,
		"updatedAt": now,
	}

	collection := db.OpenCollections(util.TenantCollection)
	if _, err := db.CreateOne(c, collection, tenant); err != nil {
		log.Println("Error from createOne while saving tenant:", err)
		if relErr := ReleaseApartmentSeat(c, apartmentID, tenantID); relErr != nil {
			log.Println("Error from releaseApartmentSeat:", relErr)
		}
		return "", err
	}

	key := util.TenantKey + tenantID
	if err := redis.SetCache(c, key, tenant); err != nil {
		log.Println("Error from setCache:", err)
	}
	return apartmentID, nil
}

/*
* Get tenant from cache, if exists return tenant
* If not exists, fetch tenant from database
* Set in cache
 */
func FetchTenantByID(c *gin.Context, tenantID string) (models.Tenant, error) {
	key := util.TenantKey + tenantID
	var cachedDoc map[string]interface{}
	exists, err := redis.GetCache(c, key, &cachedDoc)
	if err == nil && exists {
		var cached models.Tenant
		if decodeErr := decodeDocument(cachedDoc, &cached); decodeErr == nil {
			return cached, nil
		}
	}
	collection := db.OpenCollections(util.TenantCollection)
	var tenant models.Tenant
	err = db.FindOne(c, collection, bson.M{"id": tenantID}, &tenant)
	if err != nil {
		log.Println(ERR_WHILE_FETCHING_TENANT, err)
		if isNoDocuments(err) {
			return models.Tenant{}, errors.New(util.TENANT_NOT_FOUND)
		}
		return models.Tenant{}, err
	}
	if err := redis.SetCache(c, key, tenant); err != nil {
		log.Println("Unable to set tenant in cache:", err)
	}
	return tenant, nil
}

/*
* Lookup by identifier and verify the password hash
* Unknown identifier and wrong password surface the same error,
* so a caller cannot probe which identifiers exist
 */
func LoginTenant(c *gin.Context, data map[string]interface{}) (models.Tenant, error) {
	if err := common.GetTrimmedString(data, "id"); err != nil {
		log.Println("error from getTrimmedString for id:", err)
		return models.Tenant{}, errors.New(util.INVALID_CREDENTIALS)
	}
	if err := common.GetTrimmedString(data, "password"); err != nil {
		log.Println("error from getTrimmedString for password:", err)
		return models.Tenant{}, errors.New(util.INVALID_CREDENTIALS)
	}

	tenant, err := FetchTenantByID(c, data["id"].(string))
	if err != nil {
		log.Println("Error from fetchTenantByID:", err)
		return models.Tenant{}, errors.New(util.INVALID_CREDENTIALS)
	}
	if err := verifyPassword(tenant.Password, data["password"].(string)); err != nil {
		log.Println("Password mismatch for tenant:", tenant.ID)
		return models.Tenant{}, errors.New(util.INVALID_CREDENTIALS)
	}
	tenant.Password = ""
	return tenant, nil
}

/*
parseTenantUpdateFields extracts and validates the update fields.
A provided password is hashed before it is stored; updatedAt is stamped.
*/
func parseTenantUpdateFields(data map[string]interface{}) (bson.M, error) {

	update := bson.M{}

	if v, ok := data["name"].(string); ok && strings.TrimSpace(v) != "" {
		update["name"] = strings.TrimSpace(v)
	}

	if v, ok := data["password"].(string); ok && strings.TrimSpace(v) != "" {
		hash, err := hashPassword(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		update["password"] = hash
	}

	if len(update) == 0 {
		return nil, errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)
	}

	update["updatedAt"] = time.Now()
	return update, nil
}

/*
UpdateTenantByID overwrites the mutable tenant fields in place.

Workflow:
1. Parse and validate the update fields
2. Apply the update to MongoDB, 404 when nothing matched
3. Refresh cache (delete old, write new)
4. Return the updated tenant document
*/
func UpdateTenantByID(c *gin.Context, tenantID string, data map[string]interface{}) (models.Tenant, error) {

	updateFields, err := parseTenantUpdateFields(data)
	if err != nil {
		log.Println("Error from parseTenantUpdateFields:", err)
		return models.Tenant{}, err
	}

	collection := db.OpenCollections(util.TenantCollection)
	filter := bson.M{"id": tenantID}
	res, err := db.UpdateOne(c, collection, filter, bson.M{"$set": updateFields})
	if err != nil {
		log.Println("Error from updateOne:", err)
		return models.Tenant{}, err
	}
	if res.MatchedCount == 0 {
		return models.Tenant{}, errors.New(util.TENANT_NOT_FOUND)
	}

	var updated models.Tenant
	if err := db.FindOne(c, collection, filter, &updated); err != nil {
		log.Println(ERR_WHILE_FETCHING_TENANT, err)
		return models.Tenant{}, err
	}

	key := util.TenantKey + tenantID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old tenant cache:", err)
	}
	if err := redis.SetCache(c, key, updated); err != nil {
		log.Println("Failed caching updated tenant:", err)
	}

	updated.Password = ""
	return updated, nil
}

/*
* Flip the rentPaid flag unconditionally, two calls in a row
* restore the original state
 */
func applyRentToggle(tenant models.Tenant, now time.Time) (models.Tenant, bson.M) {
	tenant.RentPaid = !tenant.RentPaid
	tenant.UpdatedAt = now
	update := bson.M{"$set": bson.M{"rentPaid": tenant.RentPaid, "updatedAt": now}}
	return tenant, update
}

func ToggleRentStatus(c *gin.Context, tenantID string) (models.Tenant, error) {
	collection := db.OpenCollections(util.TenantCollection)
	filter := bson.M{"id": tenantID}

	var tenant models.Tenant
	if err := db.FindOne(c, collection, filter, &tenant); err != nil {
		log.Println(ERR_WHILE_FETCHING_TENANT, err)
		if isNoDocuments(err) {
			return models.Tenant{}, errors.New(util.TENANT_NOT_FOUND)
		}
		return models.Tenant{}, err
	}

	tenant, update := applyRentToggle(tenant, time.Now())
	if _, err := db.UpdateOne(c, collection, filter, update); err != nil {
		log.Println("Error from updateOne:", err)
		return models.Tenant{}, err
	}

	key := util.TenantKey + tenantID
	if err := redis.DeleteCache(c, key); err != nil {
		log.Println("Failed deleting old tenant cache:", err)
	}
	if err := redis.SetCache(c, key, tenant); err != nil {
		log.Println("Failed caching updated tenant:", err)
	}

	tenant.Password = ""
	return tenant, nil
}
