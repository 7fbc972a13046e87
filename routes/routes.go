package routes

import (
	"RentMe/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	r.GET("/", controllers.Welcome)
	controllers.Landlord(r)
	controllers.Tenant(r)
	controllers.Messaging(r)
}
