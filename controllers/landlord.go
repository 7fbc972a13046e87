package controllers

import (
	"errors"
	"net/http"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"RentMe/services"
	rentutil "RentMe/util"
)

func Landlord(router *gin.Engine) {
	landlord := router.Group("/landlord")
	{
		landlord.POST("/login", LandlordLogin)
		landlord.GET("/tenant-details", FetchTenantDetails)
		landlord.PUT("/tenant/rent-status", ToggleRentStatus)
		landlord.GET("/apartments", FetchAllApartments)
		landlord.PUT("/update-rent", UpdateRent)
	}
}

/*
* The landlord is a single configured identity, the check is
* a credential comparison with no stored record behind it
 */
func LandlordLogin(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	username, _ := data["username"].(string)
	password, _ := data["password"].(string)
	if !services.VerifyLandlord(username, password) {
		err := errors.New(rentutil.INVALID_CREDENTIALS)
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"isAdmin": true,
	})
}

/*
* Payment history and message log for one tenant in a single view
 */
func FetchTenantDetails(c *gin.Context) {
	tenantID := c.Query("tenantID")
	payments, messages, err := services.FetchTenantDetails(c, tenantID)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"messages": messages,
	})
}

func ToggleRentStatus(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	tenantID, _ := data["tenantID"].(string)
	tenant, err := services.ToggleRentStatus(c, tenantID)
	if err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Tenant rent status updated",
		"tenant":  tenant,
	})
}

/*
* Every apartment with its tenant list resolved to full records
 */
func FetchAllApartments(c *gin.Context) {
	apartments, err := services.FetchAllApartments(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, apartments)
}

func UpdateRent(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	apartmentID, _ := data["apartmentID"].(string)
	newRent, ok := data["newRent"].(float64)
	if !ok {
		err := errors.New(rentutil.RENT_AMOUNT_MUST_BE_A_NUMBER)
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if _, err := services.UpdateRentAmount(c, apartmentID, newRent); err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("Rent amount updated"))
}
