// Copyright 2025 Greenmask
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package widgets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/pkg/mapping"
	"github.com/greenmaskio/parammap/pkg/parameters"
)

var (
	ErrDashboardParameterExists   = errors.New("dashboard parameter with this name already exists")
	ErrDashboardParameterNotFound = errors.New("dashboard parameter not found")
)

// Session - edit session over the mappings of one widget. Edits are kept in memory until Commit.
// Cancelling the session is dropping it.
type Session struct {
	id        uuid.UUID
	store     *Store
	widget    *domains.Widget
	params    []parameters.Parameter
	dashboard []mapping.DashboardParameter
	mappings  []mapping.Editable
	logger    zerolog.Logger
}

// Open loads the widget and the other widgets of its dashboard and classifies the widget mappings
// against the dashboard parameters the other widgets define.
func Open(ctx context.Context, store *Store, widgetID int) (*Session, error) {
	id := uuid.New()
	logger := log.With().
		Str("SessionID", id.String()).
		Int("WidgetID", widgetID).
		Logger()

	w, err := store.Load(ctx, widgetID)
	if err != nil {
		return nil, err
	}
	catalog, err := parameters.NewCatalog(w.Query.Parameters...)
	if err != nil {
		return nil, fmt.Errorf("widget %d query parameters: %w", widgetID, err)
	}

	dashboard, err := dashboardParameters(ctx, store, w, logger)
	if err != nil {
		return nil, err
	}

	persisted := mapping.Complete(catalog.All(), w.Options.ParameterMappings)
	mappings, err := mapping.ClassifyOnDashboard(persisted, catalog.All(), dashboard)
	if err != nil {
		return nil, fmt.Errorf("widget %d: %w", widgetID, err)
	}

	logger.Debug().
		Str("Dashboard", w.Dashboard).
		Int("MappingsCount", len(mappings)).
		Int("DashboardParametersCount", len(dashboard)).
		Msg("edit session opened")

	return &Session{
		id:        id,
		store:     store,
		widget:    w,
		params:    catalog.All(),
		dashboard: dashboard,
		mappings:  mappings,
		logger:    logger,
	}, nil
}

// dashboardParameters collects the dashboard parameters defined by the other widgets of the dashboard.
// Widgets that cannot be classified are skipped.
func dashboardParameters(
	ctx context.Context, store *Store, w *domains.Widget, logger zerolog.Logger,
) ([]mapping.DashboardParameter, error) {
	ids, err := store.List(ctx, w.Dashboard)
	if err != nil {
		return nil, err
	}
	var all []mapping.Editable
	for _, id := range ids {
		if id == w.ID {
			continue
		}
		other, err := store.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		editable, err := classifyWidget(other)
		if err != nil {
			logger.Warn().
				Err(err).
				Int("OtherWidgetID", id).
				Msg("skipping widget while collecting dashboard parameters")
			continue
		}
		all = append(all, editable...)
	}
	return mapping.DashboardParameters(all), nil
}

func classifyWidget(w *domains.Widget) ([]mapping.Editable, error) {
	catalog, err := parameters.NewCatalog(w.Query.Parameters...)
	if err != nil {
		return nil, err
	}
	return mapping.Classify(mapping.Complete(catalog.All(), w.Options.ParameterMappings), catalog.All(), nil)
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Widget() *domains.Widget {
	return s.widget
}

func (s *Session) Mapping(name string) (mapping.Editable, error) {
	m, ok := mapping.Find(s.mappings, name)
	if !ok {
		return mapping.Editable{}, fmt.Errorf("parameter \"%s\": %w", name, ErrMappingNotFound)
	}
	return m, nil
}

// ExistingNames - dashboard parameters the mapping of the parameter may point to
func (s *Session) ExistingNames(m mapping.Editable) []string {
	return mapping.ExistingNames(s.dashboard, m.Param.Type())
}

// Change replaces old with updated. The mapping is appended when old is not in the session.
func (s *Session) Change(old, updated mapping.Editable) {
	s.mappings = mapping.Upsert(s.mappings, old, updated)
	s.logger.Debug().
		Str("ParameterName", updated.Name).
		Str("MappingType", string(updated.Type)).
		Msg("mapping changed")
}

// Rows - mapping table of the session
func (s *Session) Rows() []mapping.ViewRow {
	return mapping.Rows(s.mappings)
}

// Conflicts returns the names of the mappings that would add a dashboard parameter that already exists.
func (s *Session) Conflicts() []string {
	var res []string
	names := make([]string, 0, len(s.dashboard))
	for _, p := range s.dashboard {
		names = append(names, p.Name)
	}
	for _, m := range s.mappings {
		if mapping.AddNewConflicts(m, names) {
			res = append(res, m.Name)
		}
	}
	return res
}

// Commit stores the session mappings as the new state of the widget mappings.
func (s *Session) Commit(ctx context.Context) (map[string]mapping.Persisted, error) {
	if conflicts := s.Conflicts(); len(conflicts) > 0 {
		return nil, fmt.Errorf("parameters %v: %w", conflicts, ErrDashboardParameterExists)
	}
	persisted, err := mapping.Serialize(s.mappings)
	if err != nil {
		return nil, fmt.Errorf("error serializing mappings: %w", err)
	}
	if err = s.store.SaveMappings(ctx, s.widget, persisted); err != nil {
		return nil, err
	}
	s.logger.Debug().
		Int("MappingsCount", len(persisted)).
		Msg("widget mappings saved")
	return persisted, nil
}
