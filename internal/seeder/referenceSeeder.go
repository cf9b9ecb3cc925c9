package seeders

import (
	"context"
	"database/sql"
	"log"
)

// seedReferenceData seeds the ministry rank and skill lookup tables. Inserts
// are idempotent so the seeder can run on every boot.
func (seeder *Seeder) seedReferenceData() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	tx, err := seeder.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Fatalf("Failed to start transaction: %v", err)
	}

	ranks := []struct {
		Name        string
		Description string
	}{
		{"Exhorter", "Entry ministerial rank"},
		{"Licensed Minister", "Licensed to preach and conduct services"},
		{"Ordained Minister", "Fully ordained, may administer ordinances"},
		{"Bishop", "Oversees a district of churches"},
	}

	for _, rank := range ranks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ministry_ranks (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING;`,
			rank.Name, rank.Description,
		)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to seed ministry rank %q: %v", rank.Name, err)
		}
	}

	skills := []string{
		"Preaching",
		"Teaching",
		"Music and Worship",
		"Youth Ministry",
		"Children's Ministry",
		"Counseling",
		"Church Planting",
		"Administration",
		"Evangelism",
		"Media and Communications",
	}

	for _, skill := range skills {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ministry_skills (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING;`,
			skill,
		)
		if err != nil {
			tx.Rollback()
			log.Fatalf("Failed to seed ministry skill %q: %v", skill, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit reference data seed: %v", err)
	}
}
