package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"solartrack/internal/config"
	"solartrack/internal/database"
	"solartrack/internal/modules/project"
	"solartrack/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL, zap.NewNop())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (items first to avoid orphan rows)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM checklist_items")
	db.Exec("DELETE FROM projects")

	projectRepo := repository.NewProjectRepository(db)
	itemRepo := repository.NewChecklistItemRepository(db)
	svc := project.NewService(projectRepo, itemRepo)

	ctx := context.Background()

	// Seed through the service so every project gets its generated checklist.
	log.Println("Creating projects...")
	seeds := []project.CreateProjectRequest{
		{
			Name:            "Almaty rooftop 6.6 kWp",
			CustomerName:    "A. Nurlanov",
			SiteAddress:     "Almaty, Navoi St 37",
			PanelCount:      12,
			InverterPowerKw: 6.0,
			RoofType:        "ceramic",
			Notes:           "South-facing slope, 25 degrees",
		},
		{
			Name:            "Shymkent warehouse array",
			CustomerName:    "TOO AgroTrade",
			SiteAddress:     "Shymkent, Industrial zone 4",
			PanelCount:      24,
			InverterPowerKw: 12.0,
			RoofType:        "metal",
			Notes:           "Trapezoidal sheet, 0.5 mm steel confirmed",
		},
		{
			Name:            "Taraz field installation",
			CustomerName:    "B. Omarova",
			SiteAddress:     "Taraz district, plot 118",
			PanelCount:      48,
			InverterPowerKw: 25.0,
			RoofType:        "ground-mount",
		},
		{
			Name:            "Karaganda cottage",
			CustomerName:    "D. Serik",
			SiteAddress:     "Karaganda, Gogol St 12",
			PanelCount:      8,
			InverterPowerKw: 4.4,
			RoofType:        "fiber-cement",
			Notes:           "Old slate roof, reinforcement profiles required",
		},
	}

	created := make([]int64, 0, len(seeds))
	for _, req := range seeds {
		p, err := svc.CreateProject(ctx, req)
		if err != nil {
			log.Fatalf("seed project %q failed: %v", req.Name, err)
		}
		created = append(created, p.ID)
		log.Printf("Created project %d: %s (%d checklist items)", p.ID, p.Name, len(p.Items))
	}

	// Mark a few items done on the first project so the demo data
	// shows an installation in progress.
	log.Println("Completing first items of project 1...")
	first, err := svc.GetProject(ctx, created[0])
	if err != nil {
		log.Fatalf("reload project failed: %v", err)
	}
	for i, item := range first.Items {
		if i >= 4 {
			break
		}
		if _, err := svc.ToggleItem(ctx, first.ID, item.ID); err != nil {
			log.Fatalf("toggle item %d failed: %v", item.ID, err)
		}
	}

	log.Println("Seed completed!")
	log.Printf("Projects: %d, first one is in progress with 4 items done", len(created))
}
