package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"RentMe/util"
)

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusForError(errors.New(util.TENANT_NOT_FOUND)))
	assert.Equal(t, http.StatusNotFound, statusForError(errors.New(util.APARTMENT_NOT_FOUND)))
	assert.Equal(t, http.StatusUnauthorized, statusForError(errors.New(util.INVALID_CREDENTIALS)))
	assert.Equal(t, http.StatusBadRequest, statusForError(errors.New(util.APARTMENT_IS_FULL)))
	assert.Equal(t, http.StatusBadRequest, statusForError(errors.New(util.NO_FIELDS_PROVIDED_TO_UPDATE)))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.New("connection reset")))
}
