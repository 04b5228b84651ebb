package users

// RegisterPushTokenRequest registers a device push token for the caller
type RegisterPushTokenRequest struct {
	PushToken string `json:"pushToken" binding:"required"`
}

// UpdateLocationsRequest replaces the caller's preferred-location watch list
type UpdateLocationsRequest struct {
	PreferredLocations []string `json:"preferredLocations"`
}
