package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/xyz-asif/lostfound/internal/config"
)

// TokenVerifier abstracts the Firebase Admin auth client so handlers can be
// tested with a fake verifier.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// InitFirebase initializes the Firebase Admin SDK and returns the Auth client
func InitFirebase(cfg *config.Config) (*fbauth.Client, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %v", err)
	}

	return client, nil
}

// identityFromToken extracts the profile fields we persist from a verified
// Firebase ID token.
func identityFromToken(tok *fbauth.Token) (uid, email, name string) {
	uid = tok.UID
	if v, ok := tok.Claims["email"].(string); ok {
		email = v
	}
	if v, ok := tok.Claims["name"].(string); ok {
		name = v
	}
	return uid, email, name
}
