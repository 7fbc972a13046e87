package migrations

import (
	"context"
	"log"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"RentMe/util"
)

/*
* The lazy apartment create relies on apartmentID being unique,
* two racing creates for the same identifier must not both land
 */
func AddApartmentIDIndex() {
	ctx := context.Background()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "apartmentID", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	name, err := db.DB.Collection(util.ApartmentCollection).Indexes().CreateOne(ctx, index)
	if err != nil {
		log.Println("Error creating apartmentID index:", err)
		return
	}
	log.Println("Created index:", name)
}
