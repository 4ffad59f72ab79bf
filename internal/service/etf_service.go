package service

import (
	"slices"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// ETFService builds the list, detail and calendar views from the loaded
// snapshot and the current entitlement.
type ETFService struct {
	loader       *DataLoaderService
	entitlements *EntitlementService
}

// NewETFService creates a new ETFService with the provided dependencies.
func NewETFService(loader *DataLoaderService, entitlements *EntitlementService) *ETFService {
	return &ETFService{
		loader:       loader,
		entitlements: entitlements,
	}
}

// List returns the derived view for the given parameters.
// Returns ErrSnapshotNotLoaded while data is loading or after a failed load.
func (s *ETFService) List(params model.ViewParams) (model.ETFListResponse, error) {
	snapshot, err := s.loader.Snapshot()
	if err != nil {
		return model.ETFListResponse{}, err
	}

	isPremium := s.entitlements.IsPremium()
	etfs := BuildView(snapshot.ETFs, params.Sort, params.Search, isPremium, s.entitlements.FreeLimit())

	rows := make([]model.ETFRow, len(etfs))
	for i, e := range etfs {
		rows[i] = model.NewETFRow(e, params.Shares)
	}

	return model.ETFListResponse{
		AnalysisDate: snapshot.AnalysisDisplay,
		Sort:         params.Sort,
		Search:       params.Search,
		SearchActive: params.Search != "" && model.CanAccess(model.CapabilitySearch, isPremium),
		IsPremium:    isPremium,
		Total:        snapshot.Len(),
		Count:        len(rows),
		ETFs:         rows,
	}, nil
}

// Detail returns one fund with its derived values. Detailed metrics are
// included only when the current tier has the detailedMetrics capability.
// Without unlimitedList, funds outside the default free list return
// ErrFeatureLocked.
func (s *ETFService) Detail(ticker string, shares int64) (model.ETFDetail, error) {
	snapshot, err := s.loader.Snapshot()
	if err != nil {
		return model.ETFDetail{}, err
	}

	e, ok := snapshot.Find(ticker)
	if !ok {
		return model.ETFDetail{}, apperrors.ErrETFNotFound
	}

	// Without unlimitedList only the funds of the default free list are readable.
	if !s.entitlements.CanAccess(model.CapabilityUnlimitedList) {
		visible := BuildView(snapshot.ETFs, model.SortByScore, "", false, s.entitlements.FreeLimit())
		if !slices.ContainsFunc(visible, func(v model.ETF) bool { return v.Ticker == e.Ticker }) {
			return model.ETFDetail{}, apperrors.ErrFeatureLocked
		}
	}

	return model.NewETFDetail(e, shares, s.entitlements.CanAccess(model.CapabilityDetailedMetrics)), nil
}

// Calendar returns the ex-dividend calendar.
// Returns ErrFeatureLocked when the current tier lacks the calendar capability.
func (s *ETFService) Calendar() ([]model.CalendarEntry, error) {
	if !s.entitlements.CanAccess(model.CapabilityCalendar) {
		return nil, apperrors.ErrFeatureLocked
	}

	snapshot, err := s.loader.Snapshot()
	if err != nil {
		return nil, err
	}

	etfs := CalendarView(snapshot.ETFs)
	entries := make([]model.CalendarEntry, len(etfs))
	for i, e := range etfs {
		entries[i] = model.NewCalendarEntry(e)
	}
	return entries, nil
}
