// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration for the storefront.
type Config struct {
	Port string

	// GCP project shared by Firestore / Firebase Auth / GCS / Secret Manager.
	ProjectID       string
	CredentialsFile string

	// StoreNamespace scopes the content collections:
	// storefronts/{namespace}/plants, storefronts/{namespace}/faqs.
	StoreNamespace string

	StoreName    string
	StoreTagline string

	// Plant image assets bucket (bucket-relative imageUrl resolution).
	PlantImageBucket string

	// Contact form (SendGrid). If the API key is not in env it is
	// resolved from Secret Manager via SendGridKeySecret.
	SendGridAPIKey    string
	SendGridKeySecret string
	ContactFrom       string
	ContactInbox      string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "sprout-nursery-dev")

	return &Config{
		Port:            getenvDefault("PORT", "8080"),
		ProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		StoreNamespace: getenvDefault("STORE_NAMESPACE", "default"),
		StoreName:      getenvDefault("STORE_NAME", "Sprout Nursery"),
		StoreTagline:   getenvDefault("STORE_TAGLINE", "Houseplants, happily homed."),

		PlantImageBucket: os.Getenv("PLANT_IMAGE_BUCKET"),

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridKeySecret: getenvDefault("SENDGRID_KEY_SECRET", "sendgrid-api-key"),
		ContactFrom:       os.Getenv("CONTACT_FROM"),
		ContactInbox:      os.Getenv("CONTACT_INBOX"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
