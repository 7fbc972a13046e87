package controllers

import (
	"net/http"

	"RentMe/util"
)

/*
* Services surface errors as fixed message constants,
* the API maps them onto status codes here
 */
func statusForError(err error) int {
	switch err.Error() {
	case util.TENANT_NOT_FOUND, util.APARTMENT_NOT_FOUND:
		return http.StatusNotFound
	case util.INVALID_CREDENTIALS:
		return http.StatusUnauthorized
	case util.APARTMENT_IS_FULL,
		util.NO_FIELDS_PROVIDED_TO_UPDATE,
		util.NAME_NOT_PROVIDED,
		util.PASSWORD_NOT_PROVIDED,
		util.TENANT_ID_NOT_PROVIDED,
		util.SENDER_NOT_PROVIDED,
		util.RECEIVER_NOT_PROVIDED,
		util.MESSAGE_NOT_PROVIDED,
		util.RENT_AMOUNT_MUST_BE_A_NUMBER,
		util.AMOUNT_MUST_BE_A_NUMBER:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
