// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	httpin "sprout/internal/adapters/in/http"
	fbadapter "sprout/internal/adapters/out/firebase"
	fsadapter "sprout/internal/adapters/out/firestore"
	"sprout/internal/adapters/out/gcs"
	"sprout/internal/adapters/out/mail"
	query "sprout/internal/application/query"
	usecase "sprout/internal/application/usecase"
	appcfg "sprout/internal/infra/config"
	firebaseinfra "sprout/internal/infra/firebase"
	firestoreinfra "sprout/internal/infra/firestore"
	"sprout/internal/infra/secrets"
	"sprout/internal/pkg/clock"
)

// Container owns the runtime infrastructure and wiring.
//
// Strict deps (boot fails without them): config, Firestore, Firebase
// Auth, the plants feed. Best-effort deps (warn + degrade): GCS plant
// images, Secret Manager, SendGrid contact form, the faqs feed.
type Container struct {
	Config *appcfg.Config

	firestore *firestoreinfra.ClientWrapper
	firebase  *firebaseinfra.AppWrapper
	gcsClient *storage.Client
	smClient  *secretmanager.Client

	Fatal      *usecase.FatalState
	Sessions   *usecase.SessionUsecase
	InquiryUC  *usecase.InquiryUsecase
	Storefront *query.StorefrontQuery

	PlantFeed   *fsadapter.PlantFeedFS
	FAQFeed     *fsadapter.FAQFeedFS
	PlantImages *gcs.PlantImageRepositoryGCS

	stopFeeds context.CancelFunc
}

// NewContainer initializes all collaborators and starts the feeds.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}
	if strings.TrimSpace(cfg.ProjectID) == "" {
		return nil, errors.New("di: project id is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	c := &Container{
		Config: cfg,
		Fatal:  usecase.NewFatalState(),
	}

	// 1) Firestore (strict: no catalog without it)
	fsw, err := firestoreinfra.NewClient(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore: %w", err)
	}
	c.firestore = fsw

	// 2) Firebase Auth (strict: the identity gate is fatal by contract)
	fbw, err := firebaseinfra.NewApp(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("di: firebase: %w", err)
	}
	c.firebase = fbw

	// 3) Feeds. The plants listener trips the fatal latch on failure;
	// the faqs listener only logs.
	feedCtx, cancel := context.WithCancel(context.Background())
	c.stopFeeds = cancel

	c.PlantFeed = fsadapter.NewPlantFeedFS(fsw.Client, cfg.StoreNamespace)
	if err := c.PlantFeed.Start(feedCtx, func(err error) {
		c.Fatal.Fail("plants feed failed", err)
	}); err != nil {
		cancel()
		_ = fsw.Close()
		return nil, fmt.Errorf("di: plants feed: %w", err)
	}

	c.FAQFeed = fsadapter.NewFAQFeedFS(fsw.Client, cfg.StoreNamespace)
	if err := c.FAQFeed.Start(feedCtx); err != nil {
		// degraded help page, not fatal
		log.Printf("[di] WARN: faqs feed did not start: %v", err)
	}

	// 4) Sessions (anonymous identity gate + per-session carts)
	c.Sessions = usecase.NewSessionUsecase(
		fbadapter.NewAnonymousProviderFB(fbw.Auth),
		clock.RealClock{},
		usecase.DefaultSessionTTL,
	)
	go c.Sessions.Janitor(feedCtx, 0)

	// 5) GCS plant images (best-effort)
	if gcsClient, err := newGCSClient(ctx, cfg.CredentialsFile); err != nil {
		log.Printf("[di] WARN: gcs unavailable, plant image assets disabled: %v", err)
	} else {
		c.gcsClient = gcsClient
		c.PlantImages = gcs.NewPlantImageRepositoryGCS(gcsClient, cfg.PlantImageBucket)
	}

	// 6) Contact form (best-effort): key from env, else Secret Manager
	if mailer := c.buildMailer(ctx); mailer != nil {
		c.InquiryUC = usecase.NewInquiryUsecase(mailer, clock.RealClock{})
	}

	// 7) Read model for the four views
	c.Storefront = query.NewStorefrontQuery(cfg.StoreName, cfg.StoreTagline, c.PlantFeed, c.FAQFeed)

	return c, nil
}

// RouterDeps exposes the wiring the HTTP router needs.
func (c *Container) RouterDeps() httpin.RouterDeps {
	deps := httpin.RouterDeps{
		Storefront: c.Storefront,
		Plants:     c.PlantFeed,
		Sessions:   c.Sessions,
		Fatal:      c.Fatal,
		InquiryUC:  c.InquiryUC,
	}
	if c.PlantImages != nil {
		deps.PlantImages = c.PlantImages
	}
	return deps
}

// Close stops the feeds and releases all owned clients.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.stopFeeds != nil {
		c.stopFeeds()
	}
	if c.PlantFeed != nil {
		c.PlantFeed.Stop()
	}
	if c.FAQFeed != nil {
		c.FAQFeed.Stop()
	}
	if c.gcsClient != nil {
		_ = c.gcsClient.Close()
	}
	if c.smClient != nil {
		_ = c.smClient.Close()
	}
	if c.firestore != nil {
		_ = c.firestore.Close()
	}
}

// buildMailer resolves the SendGrid key and wires the inquiry mailer.
// Any miss disables the contact form with a warning.
func (c *Container) buildMailer(ctx context.Context) *mail.InquiryMailerSG {
	cfg := c.Config
	if strings.TrimSpace(cfg.ContactFrom) == "" || strings.TrimSpace(cfg.ContactInbox) == "" {
		log.Printf("[di] contact form disabled (CONTACT_FROM/CONTACT_INBOX not set)")
		return nil
	}

	key := strings.TrimSpace(cfg.SendGridAPIKey)
	if key == "" {
		sm, err := secretmanager.NewClient(ctx)
		if err != nil {
			log.Printf("[di] WARN: secret manager unavailable, contact form disabled: %v", err)
			return nil
		}
		c.smClient = sm

		key, err = secrets.ResolveSendGridKey(ctx, sm, cfg.ProjectID, cfg.SendGridKeySecret)
		if err != nil {
			log.Printf("[di] WARN: sendgrid key not resolved, contact form disabled: %v", err)
			return nil
		}
	}

	return mail.NewInquiryMailerSG(key, cfg.ContactFrom, cfg.ContactInbox)
}

func newGCSClient(ctx context.Context, credentialsFile string) (*storage.Client, error) {
	if credentialsFile != "" {
		return storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	}
	return storage.NewClient(ctx)
}
