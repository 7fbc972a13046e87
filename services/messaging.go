package services

import (
	"errors"
	"log"
	"sort"
	"time"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	common "github.com/KanapuramVaishnavi/Core/coreServices"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"RentMe/models"
	"RentMe/util"
)

/*
* Sender, receiver and body must all be present and non blank
 */
func validateMessageInput(data map[string]interface{}) error {
	if err := common.GetTrimmedString(data, "sender"); err != nil {
		log.Println("error from getTrimmedString for sender:", err)
		return errors.New(util.SENDER_NOT_PROVIDED)
	}
	if err := common.GetTrimmedString(data, "receiver"); err != nil {
		log.Println("error from getTrimmedString for receiver:", err)
		return errors.New(util.RECEIVER_NOT_PROVIDED)
	}
	if err := common.GetTrimmedString(data, "message"); err != nil {
		log.Println("error from getTrimmedString for message:", err)
		return errors.New(util.MESSAGE_NOT_PROVIDED)
	}
	return nil
}

/*
* Append a timestamped message record, messages are immutable
 */
func SendMessage(c *gin.Context, data map[string]interface{}) (models.Message, error) {
	if err := validateMessageInput(data); err != nil {
		log.Println("Error from validateMessageInput:", err)
		return models.Message{}, err
	}

	message := models.Message{
		Sender:   data["sender"].(string),
		Receiver: data["receiver"].(string),
		Message:  data["message"].(string),
		Date:     time.Now(),
	}

	collection := db.OpenCollections(util.MessageCollection)
	if _, err := db.CreateOne(c, collection, message); err != nil {
		log.Println("Error from createOne while saving message:", err)
		return models.Message{}, err
	}
	return message, nil
}

/*
* Every message where the user is either side of the conversation
 */
func participantFilter(user string) bson.M {
	return bson.M{"$or": []bson.M{
		{"sender": user},
		{"receiver": user},
	}}
}

/*
FetchMessagesForUser returns all messages sent or received by the user,
sorted by date ascending so the conversation reads oldest first.
*/
func FetchMessagesForUser(c *gin.Context, user string) ([]models.Message, error) {
	collection := db.OpenCollections(util.MessageCollection)
	docs, err := db.FindAll(c, collection, participantFilter(user), nil)
	if err != nil {
		log.Println("Error from findAll while fetching messages:", err)
		return nil, err
	}
	messages := []models.Message{}
	for _, doc := range docs {
		var message models.Message
		if err := decodeDocument(doc, &message); err != nil {
			log.Println("Unable to decode message document:", err)
			continue
		}
		messages = append(messages, message)
	}
	sortMessagesByDate(messages)
	return messages, nil
}

func sortMessagesByDate(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Date.Before(messages[j].Date)
	})
}

/*
* Combined landlord view of one tenant: payment history plus
* every message the tenant took part in
 */
func FetchTenantDetails(c *gin.Context, tenantID string) ([]models.Payment, []models.Message, error) {
	payments, err := FetchPaymentsForTenant(c, tenantID)
	if err != nil {
		log.Println("Error from fetchPaymentsForTenant:", err)
		return nil, nil, err
	}
	messages, err := FetchMessagesForUser(c, tenantID)
	if err != nil {
		log.Println("Error from fetchMessagesForUser:", err)
		return nil, nil, err
	}
	return payments, messages, nil
}
