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

package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenmaskio/parammap/internal/domains"
	"github.com/greenmaskio/parammap/internal/printer"
	"github.com/greenmaskio/parammap/internal/storages/builder"
	"github.com/greenmaskio/parammap/internal/utils/logger"
	"github.com/greenmaskio/parammap/internal/widgets"
)

var (
	errEmptyDashboard = errors.New("--dashboard cannot be empty")
	errFatalWarnings  = errors.New("dashboard has invalid mappings")
)

var (
	Cmd = &cobra.Command{
		Use:   "validate",
		Short: "checks the stored parameter mappings of every widget of the dashboard",
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
	dashboard string
)

func run() error {
	if dashboard == "" {
		return errEmptyDashboard
	}
	if err := printer.ValidateFormat(Config.Validate.Format); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := builder.GetStorage(ctx, Config.Storage, Config.Log)
	if err != nil {
		return fmt.Errorf("error building storage: %w", err)
	}

	reports, err := widgets.ValidateDashboard(ctx, widgets.NewStore(st), dashboard, widgets.ValidateOptions{
		Concurrency:      Config.Validate.Concurrency,
		ResolvedWarnings: Config.Validate.ResolvedWarnings,
	})
	if err != nil {
		return fmt.Errorf("error validating dashboard: %w", err)
	}

	if err = printer.PrintValidation(os.Stdout, Config.Validate.Format, reports); err != nil {
		return err
	}

	if slices.ContainsFunc(reports, func(r *widgets.WidgetReport) bool {
		return r.Warnings.IsFatal()
	}) {
		return errFatalWarnings
	}
	return nil
}

func init() {
	Cmd.Flags().StringVarP(&dashboard, "dashboard", "d", "", "dashboard slug")

	formatFlagName := "format"
	Cmd.Flags().StringP(
		formatFlagName, "f", printer.TextFormatName, "output format [text|json|yaml]",
	)
	flag := Cmd.Flags().Lookup(formatFlagName)
	if err := viper.BindPFlag("validate.format", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	concurrencyFlagName := "concurrency"
	Cmd.Flags().Int(
		concurrencyFlagName, 4, "max number of widget documents loaded at once",
	)
	flag = Cmd.Flags().Lookup(concurrencyFlagName)
	if err := viper.BindPFlag("validate.concurrency", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}

	resolvedFlagName := "resolved-warnings"
	Cmd.Flags().StringSlice(
		resolvedFlagName, nil, "hashes of the warnings that must not be reported",
	)
	flag = Cmd.Flags().Lookup(resolvedFlagName)
	if err := viper.BindPFlag("validate.resolved_warnings", flag); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
