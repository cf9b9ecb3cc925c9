package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type StatsRepository interface {
	EntityCounts(ctx context.Context) (*EntityCounts, error)
}

type EntityCounts struct {
	Churches          int `json:"churches"`
	Members           int `json:"members"`
	Ministers         int `json:"ministers"`
	Events            int `json:"events"`
	UnreadContacts    int `json:"unreadContacts"`
	MinistryRanks     int `json:"ministryRanks"`
	MinistrySkills    int `json:"ministrySkills"`
	ActiveMembers     int `json:"activeMembers"`
	ActiveMinisters   int `json:"activeMinisters"`
	UpcomingThisMonth int `json:"upcomingEventsThisMonth"`
}

type StatsRepositoryImpl struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

func (repo *StatsRepositoryImpl) EntityCounts(ctx context.Context) (*EntityCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var counts EntityCounts

	query := `
		SELECT
			(SELECT COUNT(*) FROM churches) AS churches,
			(SELECT COUNT(*) FROM people WHERE kind = 'member') AS members,
			(SELECT COUNT(*) FROM people WHERE kind = 'minister') AS ministers,
			(SELECT COUNT(*) FROM events) AS events,
			(SELECT COUNT(*) FROM contact_submissions WHERE status = 'unread') AS unread_contacts,
			(SELECT COUNT(*) FROM ministry_ranks) AS ministry_ranks,
			(SELECT COUNT(*) FROM ministry_skills) AS ministry_skills,
			(SELECT COUNT(*) FROM people WHERE kind = 'member' AND is_active) AS active_members,
			(SELECT COUNT(*) FROM people WHERE kind = 'minister' AND is_active) AS active_ministers,
			(SELECT COUNT(*) FROM events WHERE is_active AND event_date >= TO_CHAR(NOW(), 'YYYY-MM-DD')) AS upcoming_this_month`

	err := repo.db.QueryRowxContext(ctx, query).Scan(
		&counts.Churches,
		&counts.Members,
		&counts.Ministers,
		&counts.Events,
		&counts.UnreadContacts,
		&counts.MinistryRanks,
		&counts.MinistrySkills,
		&counts.ActiveMembers,
		&counts.ActiveMinisters,
		&counts.UpcomingThisMonth,
	)
	if err != nil {
		return nil, err
	}

	return &counts, nil
}
