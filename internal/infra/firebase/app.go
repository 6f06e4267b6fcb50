// internal/infra/firebase/app.go
package firebaseinfra

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// AppWrapper wraps the Firebase app and its auth client.
type AppWrapper struct {
	App  *firebase.App
	Auth *fbauth.Client
}

// NewApp initializes the Firebase app + auth client for the project.
// With an empty credentialsFile, Application Default Credentials apply.
func NewApp(ctx context.Context, projectID string, credentialsFile string) (*AppWrapper, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	auth, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	log.Printf("[firebase] auth ready (project: %s)", projectID)
	return &AppWrapper{App: app, Auth: auth}, nil
}
