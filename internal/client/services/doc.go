// Package services contains application services for the GroupGo client
// that sit beside the session manager: account registration and event
// management. They compose the API client with the token store.
package services
