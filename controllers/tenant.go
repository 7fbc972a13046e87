package controllers

import (
	"errors"
	"net/http"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"RentMe/services"
	rentutil "RentMe/util"
)

func Tenant(router *gin.Engine) {
	tenant := router.Group("/tenant")
	{
		tenant.POST("/register", RegisterTenant)
		tenant.POST("/login", LoginTenant)
		tenant.PUT("/update", UpdateTenant)
		tenant.POST("/payment", ProcessPayment)
	}
}

/*
* Bind the registration fields and pass to services
* Returns the apartment the tenant was assigned to
 */
func RegisterTenant(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	apartmentID, err := services.RegisterTenant(c, data)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Tenant registered successfully",
		"apartmentID": apartmentID,
	})
}

func LoginTenant(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	tenant, err := services.LoginTenant(c, data)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"tenant":  tenant,
	})
}

/*
* Bind the update fields, the id field selects the tenant
* and the rest is applied in place
 */
func UpdateTenant(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	tenantID, _ := data["id"].(string)
	if _, err := services.UpdateTenantByID(c, tenantID, data); err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Tenant details updated"))
}

/*
* Record a rent payment for the tenant
* Returns the end of the freshly opened rent window
 */
func ProcessPayment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	tenantID, _ := data["tenantID"].(string)
	amount, ok := data["amount"].(float64)
	if !ok {
		err := errors.New(rentutil.AMOUNT_MUST_BE_A_NUMBER)
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	rentEnd, err := services.ProcessPayment(c, tenantID, amount)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment successful",
		"rentEnd": rentEnd,
	})
}
