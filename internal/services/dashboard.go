package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/models"
)

// DashboardService aggregates the caller's records into a Summary.
type DashboardService struct {
	ods        ODReader
	placements PlacementReader
	cache      SummaryCache
}

// NewDashboardService creates a new DashboardService. cache may be nil.
func NewDashboardService(ods ODReader, placements PlacementReader, cache SummaryCache) *DashboardService {
	return &DashboardService{
		ods:        ods,
		placements: placements,
		cache:      cache,
	}
}

// Summary returns the cached summary when present, otherwise builds and caches
// it. Cache errors only cost a database round trip.
func (svc *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*models.Summary, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("summary cache get failed", "user_id", userID, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	ods, err := svc.ods.List(ctx, userID, models.ODFilter{})
	if err != nil {
		logger.Log.Errorw("failed to list ods", "user_id", userID, "err", err)
		return nil, err
	}
	placements, err := svc.placements.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list placements", "user_id", userID, "err", err)
		return nil, err
	}

	summary := BuildSummary(ods, placements)

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, userID, summary); err != nil {
			logger.Log.Warnw("summary cache set failed", "user_id", userID, "err", err)
		}
	}
	return summary, nil
}

// BuildSummary groups records by status and type. Every known label is
// present, in enum order, even when its count is zero.
func BuildSummary(ods []models.OD, placements []models.Placement) *models.Summary {
	odStatus := make(map[models.ODStatus]int)
	odType := make(map[models.ODType]int)
	for _, od := range ods {
		odStatus[od.Status]++
		odType[od.Type]++
	}

	plStatus := make(map[models.PlacementStatus]int)
	companies := make(map[string]struct{})
	for _, p := range placements {
		plStatus[p.Status]++
		companies[strings.ToLower(strings.TrimSpace(p.Company))] = struct{}{}
	}

	s := &models.Summary{
		TotalODs:           len(ods),
		ODsByStatus:        make([]models.Count, 0, len(models.ODStatuses)),
		ODsByType:          make([]models.Count, 0, len(models.ODTypes)),
		TotalPlacements:    len(placements),
		Companies:          len(companies),
		Offers:             plStatus[models.PlacementOffer],
		PlacementsByStatus: make([]models.Count, 0, len(models.PlacementPipeline)),
	}
	for _, st := range models.ODStatuses {
		s.ODsByStatus = append(s.ODsByStatus, models.Count{Label: string(st), Count: odStatus[st]})
	}
	for _, t := range models.ODTypes {
		s.ODsByType = append(s.ODsByType, models.Count{Label: string(t), Count: odType[t]})
	}
	for _, st := range models.PlacementPipeline {
		s.PlacementsByStatus = append(s.PlacementsByStatus, models.Count{Label: string(st), Count: plStatus[st]})
	}
	return s
}
