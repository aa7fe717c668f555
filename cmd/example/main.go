// Command example boots the module with file-backed persistence and walks
// through a typical editing session: saving glass records, publishing
// content, uploading media, and taking a form submission.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	glassvision "github.com/ecatuogno1/glassvision"
	"github.com/ecatuogno1/glassvision/internal/logging/gologger"
)

func main() {
	// Optional; absence of a .env file is not an error.
	_ = godotenv.Load()

	ctx := context.Background()

	provider, err := gologger.NewProvider(gologger.Config{
		Level:  envOr("GLASSVISION_LOG_LEVEL", "info"),
		Format: envOr("GLASSVISION_LOG_FORMAT", "pretty"),
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	stateDir := envOr("GLASSVISION_STATE_DIR", ".glassvision")
	blob, err := glassvision.FileBlobStore(stateDir)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	cfg := glassvision.DefaultConfig()
	cfg.Assistant.Endpoint = os.Getenv("GLASSVISION_ASSISTANT_URL")

	module, err := glassvision.New(cfg,
		glassvision.WithLoggerProvider(provider),
		glassvision.WithBlobStore(blob),
	)
	if err != nil {
		log.Fatalf("module: %v", err)
	}

	actor := envOr("GLASSVISION_ACTOR", "demo@glassvision.dev")
	role := module.RoleFor(actor)
	fmt.Printf("acting as %s (%s)\n\n", actor, role)

	record, err := module.Catalog().Upsert(ctx, actor, glassvision.GlassRecord{
		Name:         "Ocean Glass",
		HueGroup:     "Blue-Green",
		Hex:          "#2E8B8B",
		Reflectance:  12,
		Description:  "Coastal blue-green glass for daylighting installations.",
		Applications: []string{"Facades", "Skylights"},
		Tags:         []string{"coastal", "daylighting"},
	})
	if err != nil {
		log.Fatalf("catalog upsert: %v", err)
	}
	fmt.Printf("saved glass record %s (%s)\n", record.ID, record.Status)

	entry, err := module.Content().Upsert(ctx, actor, glassvision.EntityBlog, glassvision.EntryDraft{
		Title:   "Specifying Ocean Glass",
		Summary: "Guidance for architects evaluating coastal palettes.",
		Body:    "## Overview\n\nOcean Glass balances transmission and tint.",
		Tags:    []string{"guides"},
	})
	if err != nil {
		log.Fatalf("content upsert: %v", err)
	}
	published, err := module.Content().UpdateStatus(ctx, actor, glassvision.EntityBlog, entry.ID, glassvision.StatusPublished)
	if err != nil {
		log.Fatalf("content publish: %v", err)
	}
	fmt.Printf("published %q at %s\n", published.Title, published.PublishedAt.Format("2006-01-02 15:04"))

	if ok, _ := module.Can(glassvision.ResourceForms, role, glassvision.ActionCreate); ok {
		submission, err := module.Forms().Submit(ctx, actor, "form-lead-intake", map[string]any{
			"field-name":  "Demo Visitor",
			"field-email": actor,
		})
		if err != nil {
			log.Fatalf("form submit: %v", err)
		}
		fmt.Printf("submission %s recorded\n", submission.ID)
	}

	snapshot := module.State()
	fmt.Printf("\n%d glass records, %d activity entries, conversion %d%%\n",
		len(snapshot.GlassRecords), len(snapshot.Activity), snapshot.Analytics.FormConversionRate)

	for _, toast := range module.Notifications().List() {
		fmt.Printf("toast [%s] %s\n", toast.Status, toast.Title)
	}

	if module.Assistant().Configured() {
		text, err := module.Assistant().Generate(ctx, "Draft a one-line description for Ocean Glass.")
		if err != nil {
			fmt.Printf("assistant error: %v\n", err)
		} else {
			fmt.Printf("assistant: %s\n", text)
		}
	}

	module.Save(ctx)

	if os.Getenv("GLASSVISION_DUMP_STATE") != "" {
		encoded, _ := json.MarshalIndent(snapshot, "", "  ")
		fmt.Println(string(encoded))
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
