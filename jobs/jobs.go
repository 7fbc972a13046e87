package jobs

import (
	db "github.com/KanapuramVaishnavi/Core/config/db"

	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"RentMe/util"
)

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running Daily Rent Expiry Sweep...")
		ExpireOverdueRents()
	})

	c.Start()
}

/*
* A payment opens a 30 day rent window, this sweep closes it.
* Every tenant whose window ended before now goes back to unpaid.
 */
func ExpireOverdueRents() {
	now := time.Now()
	coll := db.OpenCollections(util.TenantCollection)

	res, err := coll.UpdateMany(context.Background(),
		overdueRentFilter(now),
		bson.M{"$set": bson.M{"rentPaid": false, "updatedAt": now}},
	)
	if err != nil {
		log.Println("Error from updateMany while expiring rents:", err)
		return
	}
	log.Println("Rent windows expired:", res.ModifiedCount)
}

func overdueRentFilter(now time.Time) bson.M {
	return bson.M{
		"rentPaid": true,
		"rentEnd":  bson.M{"$lt": now},
	}
}
