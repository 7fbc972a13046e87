package controllers

import (
	"net/http"

	util "github.com/KanapuramVaishnavi/Core/util"
	"github.com/gin-gonic/gin"

	"RentMe/services"
)

func Messaging(router *gin.Engine) {
	router.POST("/messaging", SendMessage)
	router.GET("/messages", FetchMessages)
}

/*
* Append one message between a tenant and the landlord
 */
func SendMessage(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if _, err := services.SendMessage(c, data); err != nil {
		c.JSON(statusForError(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
}

/*
* Full message log for one participant, oldest first
 */
func FetchMessages(c *gin.Context) {
	user := c.Query("user")
	messages, err := services.FetchMessagesForUser(c, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, messages)
}
