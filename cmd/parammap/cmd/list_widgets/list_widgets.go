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

package list_widgets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/internal/printer"
	"github.com/greenmaskio/parammap/internal/storages/builder"
	"github.com/greenmaskio/parammap/internal/utils/logger"
	"github.com/greenmaskio/parammap/internal/widgets"
)

var errEmptyDashboard = errors.New("--dashboard cannot be empty")

var (
	Cmd = &cobra.Command{
		Use:   "list-widgets",
		Short: "list of the widgets placed on the dashboard",
		Run: func(cmd *cobra.Command, args []string) {
			if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
				log.Fatal().Err(err).Msg("error setting up logger")
			}

			if err := run(); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}
	Config    = domains.NewConfig()
	format    string
	dashboard string
)

func run() error {
	if dashboard == "" {
		return errEmptyDashboard
	}
	if err := printer.ValidateFormat(format); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := builder.GetStorage(ctx, Config.Storage, Config.Log)
	if err != nil {
		return fmt.Errorf("error building storage: %w", err)
	}
	store := widgets.NewStore(st)

	ids, err := store.List(ctx, dashboard)
	if err != nil {
		return fmt.Errorf("error listing widgets: %w", err)
	}
	list := make([]*domains.Widget, len(ids))
	for idx, id := range ids {
		if list[idx], err = store.Load(ctx, id); err != nil {
			return err
		}
	}

	return printer.PrintWidgets(os.Stdout, format, list)
}

func init() {
	Cmd.Flags().StringVarP(&dashboard, "dashboard", "d", "", "dashboard slug")
	Cmd.Flags().StringVarP(&format, "format", "f", printer.TextFormatName, "output format [text|json|yaml]")
}
