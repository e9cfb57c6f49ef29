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

package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/greenmaskio/parammap/internal/domains"
	stringsUtils "github.com/greenmaskio/parammap/internal/utils/strings"
	"github.com/greenmaskio/parammap/internal/widgets"
	"github.com/greenmaskio/parammap/pkg/mapping"
)

const (
	JsonFormatName = "json"
	YamlFormatName = "yaml"
	TextFormatName = "text"
)

const maxWrapLength = 40

var ErrUnknownFormat = errors.New("unknown format")

func ValidateFormat(format string) error {
	switch format {
	case JsonFormatName, YamlFormatName, TextFormatName:
		return nil
	}
	return fmt.Errorf("format %s: %w", format, ErrUnknownFormat)
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case JsonFormatName:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YamlFormatName:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("format %s: %w", format, ErrUnknownFormat)
}

// PrintMappings prints the mapping table of a widget
func PrintMappings(w io.Writer, format string, rows []mapping.ViewRow) error {
	if format != TextFormatName {
		return encode(w, format, rows)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Title", "Keyword", "Default Value", "Value Source"})
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	for _, r := range rows {
		table.Append([]string{
			r.Title,
			r.Keyword,
			stringsUtils.WrapString(r.DefaultValue, maxWrapLength),
			r.Source,
		})
	}
	table.Render()
	return nil
}

const lastModifiedLayout = "2006-01-02 15:04:05"

type widgetLine struct {
	ID           int       `json:"id" yaml:"id"`
	Title        string    `json:"title" yaml:"title"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`
}

// PrintWidgets prints ids, titles and modification times of widgets
func PrintWidgets(w io.Writer, format string, list []*domains.Widget) error {
	lines := make([]widgetLine, len(list))
	for idx, item := range list {
		lines[idx] = widgetLine{ID: item.ID, Title: item.Title, LastModified: item.LastModified}
	}
	if format != TextFormatName {
		return encode(w, format, lines)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Last Modified"})
	for _, l := range lines {
		modified := ""
		if !l.LastModified.IsZero() {
			modified = l.LastModified.Local().Format(lastModifiedLayout)
		}
		table.Append([]string{strconv.Itoa(l.ID), l.Title, modified})
	}
	table.Render()
	return nil
}

// PrintValidation prints validation reports. In text format warnings of one widget are merged by the
// widget column.
func PrintValidation(w io.Writer, format string, reports []*widgets.WidgetReport) error {
	if format != TextFormatName {
		if reports == nil {
			reports = []*widgets.WidgetReport{}
		}
		return encode(w, format, reports)
	}

	var data [][]string
	for _, r := range reports {
		widget := fmt.Sprintf("%d %s", r.WidgetID, r.Title)
		for _, warn := range r.Warnings {
			data = append(data, []string{
				widget,
				warn.Severity,
				metaString(warn.Meta, "ParameterName"),
				stringsUtils.WrapString(warn.Msg, maxWrapLength),
				warn.Hash,
			})
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Widget", "Severity", "Parameter", "Message", "Hash"})
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.SetRowLine(true)
	table.SetAutoMergeCellsByColumnIndex([]int{0})
	table.Render()
	return nil
}

func metaString(meta map[string]any, key string) string {
	v, ok := meta[key]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
