package items

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() *CreateItemRequest {
	return &CreateItemRequest{
		Title:    "Blue water bottle",
		Category: CategoryOther,
		Status:   StatusLost,
		Location: "Clark Hall entrance",
	}
}

func TestValidateCreateItem_Valid(t *testing.T) {
	require.NoError(t, ValidateCreateItem(validRequest()))
}

func TestValidateCreateItem_RequiredFields(t *testing.T) {
	req := validRequest()
	req.Title = "   "
	require.EqualError(t, ValidateCreateItem(req), "title is required")

	req = validRequest()
	req.Location = ""
	require.EqualError(t, ValidateCreateItem(req), "location is required")
}

func TestValidateCreateItem_Category(t *testing.T) {
	req := validRequest()
	req.Category = "Furniture"
	require.Error(t, ValidateCreateItem(req))

	for _, c := range Categories {
		req.Category = c
		require.NoError(t, ValidateCreateItem(req))
	}
}

func TestValidateCreateItem_Status(t *testing.T) {
	req := validRequest()
	req.Status = StatusClaimed
	require.EqualError(t, ValidateCreateItem(req), "status must be lost or found")

	req.Status = "stolen"
	require.Error(t, ValidateCreateItem(req))
}

func TestValidateCreateItem_CoordinatesTogether(t *testing.T) {
	lat, lng := 40.1, -88.2

	req := validRequest()
	req.Lat = &lat
	require.EqualError(t, ValidateCreateItem(req), "lat and lng must be provided together")

	req.Lng = &lng
	require.NoError(t, ValidateCreateItem(req))
}

func TestValidateStatusChange(t *testing.T) {
	require.NoError(t, ValidateStatusChange(StatusLost))
	require.NoError(t, ValidateStatusChange(StatusFound))
	require.Error(t, ValidateStatusChange(StatusClaimed))
	require.Error(t, ValidateStatusChange(""))
}
