package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"RentMe/util"
)

/*
* Messages are queried by either side of the conversation and
* payments by tenant, index all three paths
 */
func AddLookupIndexes() {
	ctx := context.Background()

	messageIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender", Value: 1}}},
		{Keys: bson.D{{Key: "receiver", Value: 1}}},
	}
	names, err := db.DB.Collection(util.MessageCollection).Indexes().CreateMany(ctx, messageIndexes)
	if err != nil {
		log.Println("Error creating message indexes:", err)
	} else {
		log.Println("Created indexes:", names)
	}

	paymentIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "tenantID", Value: 1}},
	}
	name, err := db.DB.Collection(util.PaymentCollection).Indexes().CreateOne(ctx, paymentIndex)
	if err != nil {
		log.Println("Error creating payment index:", err)
		return
	}
	log.Println("Created index:", name)
}
