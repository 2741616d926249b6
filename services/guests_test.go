package services

import (
	"testing"

	"github.com/JhonFredyH/LuxeHotel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGuestCreatesOnFirstContact(t *testing.T) {
	db := newTestDB(t)

	guest, err := ResolveGuest(db, GuestProfile{
		FirstName: "Luis",
		LastName:  "Mora",
		Email:     "Luis.Mora@Example.com",
		Phone:     "+573001112233",
		City:      "Bogotá",
	})
	require.NoError(t, err)
	assert.NotZero(t, guest.ID)
	// emails are normalized to lower case before lookup and storage
	assert.Equal(t, "luis.mora@example.com", guest.Email)
	assert.Equal(t, "Bogotá", guest.City)
}

func TestResolveGuestReturnsExistingUnchanged(t *testing.T) {
	db := newTestDB(t)

	existing := models.Guest{FirstName: "Luis", LastName: "Mora", Email: "luis.mora@example.com", Phone: "+573001112233"}
	require.NoError(t, db.Create(&existing).Error)

	guest, err := ResolveGuest(db, GuestProfile{
		FirstName: "Luis Alberto",
		LastName:  "Mora",
		Email:     "LUIS.MORA@example.com",
		Phone:     "+570000000000",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, guest.ID)
	assert.Equal(t, "Luis", guest.FirstName)
	assert.Equal(t, "+573001112233", guest.Phone)

	var count int64
	db.Model(&models.Guest{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
