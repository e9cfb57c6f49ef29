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

package edit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/internal/printer"
	"github.com/greenmaskio/parammap/internal/storages/builder"
	"github.com/greenmaskio/parammap/internal/utils/logger"
	"github.com/greenmaskio/parammap/internal/widgets"
	"github.com/greenmaskio/parammap/pkg/mapping"
)

const (
	paramFlagName = "param"
	typeFlagName  = "type"
	mapToFlagName = "map-to"
	valueFlagName = "value"
	titleFlagName = "title"
)

var errEmptyParam = errors.New("--param cannot be empty")

var (
	Cmd = &cobra.Command{
		Use:   "edit [flags] widgetId",
		Args:  cobra.ExactArgs(1),
		Short: "changes the mapping of one widget parameter and saves it",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("error setting up logger")
			}

			e, err := buildEdit(cmd)
			if err != nil {
				log.Fatal().Err(err).Msg("")
			}
			if err = run(args[0], e); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
	format string
)

// parseValue - the value is taken as JSON when it is valid JSON, otherwise as a plain string
func parseValue(raw string) any {
	if gjson.Valid(raw) {
		return gjson.Parse(raw).Value()
	}
	return raw
}

func buildEdit(cmd *cobra.Command) (widgets.Edit, error) {
	flags := cmd.Flags()
	e := widgets.Edit{}

	var err error
	if e.Param, err = flags.GetString(paramFlagName); err != nil {
		return e, err
	}
	if e.Param == "" {
		return e, errEmptyParam
	}
	if flags.Changed(typeFlagName) {
		v, err := flags.GetString(typeFlagName)
		if err != nil {
			return e, err
		}
		t := mapping.Type(v)
		e.Type = &t
	}
	if flags.Changed(mapToFlagName) {
		v, err := flags.GetString(mapToFlagName)
		if err != nil {
			return e, err
		}
		e.MapTo = &v
	}
	if flags.Changed(valueFlagName) {
		v, err := flags.GetString(valueFlagName)
		if err != nil {
			return e, err
		}
		e.Value = parseValue(v)
		e.SetValue = true
	}
	if flags.Changed(titleFlagName) {
		v, err := flags.GetString(titleFlagName)
		if err != nil {
			return e, err
		}
		e.Title = &v
	}
	return e, nil
}

func run(rawID string, e widgets.Edit) error {
	if err := printer.ValidateFormat(format); err != nil {
		return err
	}
	widgetID, err := cast.ToIntE(rawID)
	if err != nil {
		return fmt.Errorf("invalid widget id \"%s\": %w", rawID, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := builder.GetStorage(ctx, Config.Storage, Config.Log)
	if err != nil {
		return fmt.Errorf("error building storage: %w", err)
	}

	s, err := widgets.Open(ctx, widgets.NewStore(st), widgetID)
	if err != nil {
		return fmt.Errorf("cannot open widget: %w", err)
	}
	m, err := s.Apply(e)
	if err != nil {
		return fmt.Errorf("cannot apply edit: %w", err)
	}
	if _, err = s.Commit(ctx); err != nil {
		return fmt.Errorf("cannot save mappings: %w", err)
	}
	log.Info().
		Str("SessionID", s.ID().String()).
		Int("WidgetID", s.Widget().ID).
		Str("WidgetTitle", s.Widget().Title).
		Str("ParameterName", m.Name).
		Str("MappingType", string(m.Type)).
		Msg("mapping saved")

	return printer.PrintMappings(os.Stdout, format, s.Rows())
}

func setFlags(flags *pflag.FlagSet) {
	flags.String(paramFlagName, "", "name of the query parameter")
	flags.String(typeFlagName, "", fmt.Sprintf(
		"mapping type [%s|%s|%s|%s]",
		mapping.TypeDashboardAddNew,
		mapping.TypeDashboardMapToExisting,
		mapping.TypeWidgetLevel,
		mapping.TypeStaticValue,
	))
	flags.String(mapToFlagName, "", "name of the dashboard parameter")
	flags.String(valueFlagName, "", "static value. JSON values are decoded, anything else is taken as a string")
	flags.String(titleFlagName, "", "title override, not available for static values. Empty string resets it")
	flags.StringVarP(&format, "format", "f", printer.TextFormatName, "output format [text|json|yaml]")
}

func init() {
	setFlags(Cmd.Flags())
}
