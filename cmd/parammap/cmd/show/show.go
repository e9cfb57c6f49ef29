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

package show

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/internal/printer"
	"github.com/greenmaskio/parammap/internal/storages/builder"
	"github.com/greenmaskio/parammap/internal/utils/logger"
	"github.com/greenmaskio/parammap/internal/widgets"
)

var (
	Cmd = &cobra.Command{
		Use:   "show [flags] widgetId",
		Args:  cobra.ExactArgs(1),
		Short: "shows the parameter mappings of the widget",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("error setting up logger")
			}

			if err := run(args[0]); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config = domains.NewConfig()
	format string
)

func run(rawID string) error {
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
	for _, name := range s.Conflicts() {
		log.Warn().
			Str("WidgetTitle", s.Widget().Title).
			Str("ParameterName", name).
			Msg(widgets.ErrDashboardParameterExists.Error())
	}

	return printer.PrintMappings(os.Stdout, format, s.Rows())
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", printer.TextFormatName, "output format [text|json|yaml]")
}
