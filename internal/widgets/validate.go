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
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/pkg/mapping"
	"github.com/greenmaskio/parammap/pkg/parameters"
)

const defaultConcurrency = 4

type ValidateOptions struct {
	// Concurrency - max number of widget documents loaded at once
	Concurrency int
	// ResolvedWarnings - hashes of warnings that must not be reported
	ResolvedWarnings []string
}

type WidgetReport struct {
	WidgetID int                           `json:"widget_id" yaml:"widget_id"`
	Title    string                        `json:"title" yaml:"title"`
	Warnings parameters.ValidationWarnings `json:"warnings" yaml:"warnings"`
}

type checkedWidget struct {
	widget   *domains.Widget
	params   []parameters.Parameter
	valid    []mapping.Persisted
	warnings parameters.ValidationWarnings
}

// ValidateDashboard checks the stored mappings of every widget of the dashboard. Only widgets with
// findings are reported.
func ValidateDashboard(
	ctx context.Context, store *Store, dashboard string, opts ValidateOptions,
) ([]*WidgetReport, error) {
	ids, err := store.List(ctx, dashboard)
	if err != nil {
		return nil, err
	}

	loaded := make([]*domains.Widget, len(ids))
	eg, gtx := errgroup.WithContext(ctx)
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	eg.SetLimit(concurrency)
	for idx, id := range ids {
		eg.Go(func() error {
			w, err := store.Load(gtx, id)
			if err != nil {
				return err
			}
			loaded[idx] = w
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	checked := make([]*checkedWidget, 0, len(loaded))
	for _, w := range loaded {
		checked = append(checked, checkWidget(w))
	}
	checkDashboard(checked)

	var res []*WidgetReport
	for _, cw := range checked {
		warnings := slices.DeleteFunc(cw.warnings, func(w *parameters.ValidationWarning) bool {
			return slices.Contains(opts.ResolvedWarnings, w.Hash)
		})
		if len(warnings) == 0 {
			continue
		}
		res = append(res, &WidgetReport{
			WidgetID: cw.widget.ID,
			Title:    cw.widget.Title,
			Warnings: warnings,
		})
	}
	log.Debug().
		Str("Dashboard", dashboard).
		Int("WidgetsCount", len(ids)).
		Int("ReportedWidgetsCount", len(res)).
		Msg("dashboard validated")
	return res, nil
}

func newWarning(w *domains.Widget, name string) *parameters.ValidationWarning {
	return parameters.NewValidationWarning().
		AddMeta("WidgetID", w.ID).
		AddMeta("ParameterName", name)
}

// checkWidget validates each stored mapping on its own and keeps the ones that can be classified.
func checkWidget(w *domains.Widget) *checkedWidget {
	cw := &checkedWidget{widget: w}
	catalog, err := parameters.NewCatalog(w.Query.Parameters...)
	if err != nil {
		warn := parameters.NewValidationWarning().
			SetSeverity(parameters.ErrorValidationSeverity).
			SetMsgf("invalid query parameters: %s", err).
			AddMeta("WidgetID", w.ID)
		warn.MakeHash()
		cw.warnings = append(cw.warnings, warn)
		return cw
	}
	cw.params = catalog.All()

	names := make([]string, 0, len(w.Options.ParameterMappings))
	for name := range w.Options.ParameterMappings {
		names = append(names, name)
	}
	slices.Sort(names)

	valid := make(map[string]mapping.Persisted, len(names))
	for _, name := range names {
		m := w.Options.ParameterMappings[name]
		m.Name = name
		var warn *parameters.ValidationWarning
		p, ok := catalog.Get(name)
		switch {
		case !ok:
			warn = newWarning(w, name).
				SetSeverity(parameters.ErrorValidationSeverity).
				SetMsg("mapping refers to unknown parameter")
		case m.Type != mapping.DashboardLevel && m.Type != mapping.WidgetLevel && m.Type != mapping.StaticValue:
			warn = newWarning(w, name).
				SetSeverity(parameters.ErrorValidationSeverity).
				SetMsg("invalid mapping type").
				AddMeta("MappingType", m.Type)
		case m.Type == mapping.DashboardLevel && m.MapTo == "":
			warn = newWarning(w, name).
				SetSeverity(parameters.ErrorValidationSeverity).
				SetMsg("dashboard mapping has no target parameter")
		case m.Type == mapping.StaticValue:
			cw.warnings = append(cw.warnings, checkStaticValue(w, p, m)...)
		}
		if warn != nil {
			warn.MakeHash()
			cw.warnings = append(cw.warnings, warn)
			continue
		}
		valid[name] = m
	}
	cw.valid = mapping.Complete(cw.params, valid)
	return cw
}

// checkStaticValue reports static values that normalization would drop or replace
func checkStaticValue(w *domains.Widget, p parameters.Parameter, m mapping.Persisted) parameters.ValidationWarnings {
	warnings := p.Validate(m.Value)
	for _, warn := range warnings {
		warn.AddMeta("WidgetID", w.ID)
		warn.MakeHash()
	}
	return warnings
}

// checkDashboard reports dashboard mappings that would add a dashboard parameter another widget already
// defines with a different type.
func checkDashboard(checked []*checkedWidget) {
	editable := make([][]mapping.Editable, len(checked))
	for idx, cw := range checked {
		if cw.params == nil {
			continue
		}
		res, err := mapping.Classify(cw.valid, cw.params, nil)
		if err != nil {
			// unreachable for mappings that passed checkWidget
			log.Warn().Err(err).Int("WidgetID", cw.widget.ID).Msg("cannot classify widget mappings")
			continue
		}
		editable[idx] = res
	}

	for idx, cw := range checked {
		var others []mapping.Editable
		for otherIdx, res := range editable {
			if otherIdx != idx {
				others = append(others, res...)
			}
		}
		defs := mapping.DashboardParameters(others)
		for _, m := range editable[idx] {
			if !m.Type.IsDashboard() {
				continue
			}
			defIdx := slices.IndexFunc(defs, func(d mapping.DashboardParameter) bool {
				return d.Name == m.MapTo
			})
			if defIdx == -1 || defs[defIdx].Type == m.Param.Type() {
				continue
			}
			warn := newWarning(cw.widget, m.Name).
				SetMsgf("%s with another type", ErrDashboardParameterExists).
				AddMeta("MapTo", m.MapTo).
				AddMeta("ParameterType", m.Param.Type()).
				AddMeta("DashboardParameterType", defs[defIdx].Type)
			warn.MakeHash()
			cw.warnings = append(cw.warnings, warn)
		}
	}
}
