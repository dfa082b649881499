// Package entities contains domain entities used across the application.
package entities

// Brand represents a car manufacturer or its performance division.
type Brand struct {
	ID           string `json:"id"`           // stable lowercase-hyphenated key, e.g. "aston-martin"
	Name         string `json:"name"`         // display name
	Country      string `json:"country"`      // country of origin
	Founded      int    `json:"founded"`      // year the brand was founded
	LogoURL      string `json:"logoUrl"`      // reference to the logo asset
	PrimaryColor string `json:"primaryColor"` // display color tag, opaque to the game
	Description  string `json:"description"`  // one-line description
}
