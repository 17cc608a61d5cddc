package sheets

import (
	"context"

	log "github.com/sirupsen/logrus"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sp0x/certd/table"
)

// Discovery finds the tables that exist in a resource.
type Discovery struct {
	api      API
	retrier  *Retrier
	enabled  bool
	fallback []string
	logger   log.FieldLogger
}

// NewDiscovery creates a discovery that falls back to the given table names.
// If enabled is false the remote metadata is never queried.
func NewDiscovery(api API, retrier *Retrier, enabled bool, fallback []string) *Discovery {
	return &Discovery{
		api:      api,
		retrier:  retrier,
		enabled:  enabled,
		fallback: fallback,
		logger:   log.WithField("component", "discovery"),
	}
}

// ListTables returns the tables of the resource in remote order.
// Any failure results in the configured table names being returned instead.
func (d *Discovery) ListTables(ctx context.Context, resource string) []table.Info {
	if !d.enabled {
		return d.configured(resource)
	}
	var spreadsheet *sheetsapi.Spreadsheet
	err := d.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		spreadsheet, err = d.api.Spreadsheet(ctx, resource)
		return err
	})
	if err == nil {
		var tables []table.Info
		tables, err = tablesFromMetadata(resource, spreadsheet)
		if err == nil {
			d.logger.
				WithFields(log.Fields{"resource": resource, "tables": len(tables)}).
				Debug("Discovered tables")
			return tables
		}
	}
	d.logger.
		WithField("resource", resource).
		Warnf("Couldn't discover tables, using the configured ones: %v", err)
	return d.configured(resource)
}

func (d *Discovery) configured(resource string) []table.Info {
	output := make([]table.Info, 0, len(d.fallback))
	for _, name := range d.fallback {
		output = append(output, table.Info{ID: table.ID{Resource: resource, Name: name}})
	}
	return output
}

func tablesFromMetadata(resource string, spreadsheet *sheetsapi.Spreadsheet) ([]table.Info, error) {
	if spreadsheet == nil || len(spreadsheet.Sheets) == 0 {
		return nil, &MalformedResponseError{Resource: resource, Reason: "no sheets in metadata"}
	}
	output := make([]table.Info, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet == nil || sheet.Properties == nil || sheet.Properties.Title == "" {
			return nil, &MalformedResponseError{Resource: resource, Reason: "sheet without a title"}
		}
		info := table.Info{ID: table.ID{Resource: resource, Name: sheet.Properties.Title}}
		if grid := sheet.Properties.GridProperties; grid != nil {
			info.RowCount = int(grid.RowCount)
		}
		output = append(output, info)
	}
	return output, nil
}
