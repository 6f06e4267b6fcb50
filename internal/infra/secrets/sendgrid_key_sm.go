// internal/infra/secrets/sendgrid_key_sm.go
package secrets

import (
	"context"
	"errors"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// ResolveSendGridKey fetches the SendGrid API key from Secret Manager.
// Used only when SENDGRID_API_KEY is not set in the environment.
func ResolveSendGridKey(ctx context.Context, sm *secretmanager.Client, projectID, secretID string) (string, error) {
	if sm == nil {
		return "", errors.New("secrets: secret manager client is nil")
	}
	prj := strings.TrimSpace(projectID)
	sid := strings.TrimSpace(secretID)
	if prj == "" || sid == "" {
		return "", errors.New("secrets: projectID/secretID is empty")
	}

	name := "projects/" + prj + "/secrets/" + sid + "/versions/latest"
	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.New("secrets: AccessSecretVersion failed (" + name + "): " + err.Error())
	}
	if resp == nil || resp.Payload == nil {
		return "", errors.New("secrets: empty payload (" + name + ")")
	}
	return strings.TrimSpace(string(resp.Payload.Data)), nil
}
