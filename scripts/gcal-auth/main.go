// scripts/gcal-auth/main.go
//
// Run this once per user to authorize read-only Google Calendar access and
// print the refresh token to store as the user's calendar_token.
//
// Usage:
//
//	go run scripts/gcal-auth/main.go [google-credentials.json]
//
// Open the printed URL, sign in, paste the authorization code back, then
// store the token with:
//
//	curl -X PUT -H "X-API-Key: $ADMIN_API_KEY" \
//	  -d '{"calendar_token":"<refresh token>"}' \
//	  http://localhost:8080/api/v1/users/<email>/settings
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"calendar-status-sync/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	config, err := gcalendar.OAuthConfigFromFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to load credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	// prompt=consent makes Google return a refresh token on every run
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with the user's account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}
	if tok.RefreshToken == "" {
		log.Fatal("Google did not return a refresh token. Revoke the app's access and run again.")
	}

	fmt.Println()
	fmt.Println("Refresh token (store as calendar_token):")
	fmt.Println(tok.RefreshToken)
}
